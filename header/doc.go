// Package header provides validated, normalized header field names and values.
//
// # Classification
//
// Every input octet is looked up in a 256-entry table. An entry maps a legal octet
// to itself and an illegal one to 0, so validation is a single indexed load per octet
// and 0 never appears in a validated name or value.
//
// Field names accept ASCII letters, digits, "-" and "_".
// Field values accept horizontal tab and the printable ASCII range from " " to "~".
// Use [ClassifyNameByte] and [ClassifyValueByte] to query the tables directly.
//
// # Construction
//
// Each kind has validating and non-validating constructors:
//
//	name, err := header.NewName([]byte("Content-Type")) // or header.ParseName("Content-Type")
//	val, err := header.ParseValue("text/plain")
//
//	name := header.StaticName("X-Request-Id")         // trusted literal
//	name := header.NewNameUnchecked(raw).Clean()      // or header.SanitizeName(raw)
//
// Validating constructors return [ErrInvalidName] or [ErrInvalidValue] when the input
// contains at least one illegal octet. The error intentionally carries neither the octet
// nor its position. Non-validating constructors never fail: illegal octets are replaced with
// placeholder nulls of the same count, which Clean removes later.
//
// Empty input is accepted by every constructor.
//
// # Secret values
//
// A [Value] is [Visible] when constructed. [Value.IntoSecret] marks it [Secret], after
// which String, every fmt verb, slog and text/JSON marshaling render [Redacted] instead
// of the content:
//
//	v := header.StaticValue("Bearer abc").IntoSecret()
//	fmt.Println(v)        // <REDACTED>
//	fmt.Printf("%#v", v)  // header.Value(<REDACTED>)
//	v.UTF8()              // Bearer abc
//
// Visibility does not affect equality, content or validation. Clean and Clone keep it.
//
// Values of header fields registered with [RegisterSensitive] (Authorization, Cookie and
// a few others by default) can be built already marked secret with [NewFieldValue].
//
// # Concurrency
//
// Names and values are immutable, constructors copy their input. The sensitive
// name registry is safe for concurrent use.
package header
