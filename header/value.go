package header

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Redacted is rendered in place of a secret value content.
const Redacted = "<REDACTED>"

// Visibility controls how a [Value] is rendered in diagnostic output.
type Visibility uint8

const (
	// Visible values are rendered as is. This is the default.
	Visible Visibility = iota
	// Secret values are rendered as [Redacted].
	Secret
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Secret:
		return "secret"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// Value represents a header field value.
//
// A Value built with [NewValue] or [ParseValue] contains only horizontal tabs and
// printable ASCII characters. Values built with [NewValueUnchecked] or [StaticValue]
// may carry placeholder null octets in place of rejected input, use [Value.Clean] to drop them.
//
// Every value is [Visible] when constructed. A [Secret] value never exposes its content
// through String, fmt verbs, slog or text/JSON marshaling; only [Value.Bytes],
// [Value.UTF8] and [Value.Release] give access to it.
//
// The zero Value is an empty visible value.
type Value struct {
	// Kept behind a pointer so that reflection-based dumps of enclosing structs
	// print an address instead of the octets.
	buf *[]byte
	vis Visibility
}

func newValue(buf []byte, vis Visibility) Value { return Value{&buf, vis} }

// NewValue constructs a header field value from a copy of b.
// It returns [ErrInvalidValue] if b contains any octet not allowed in a value.
func NewValue(b []byte) (Value, error) { return errtrace.Wrap2(ParseValue(b)) }

// ParseValue constructs a header field value from the given input s (string or []byte).
// It behaves exactly like [NewValue].
func ParseValue[T constraints.Byteseq](s T) (Value, error) {
	buf, ok := normalize(&valueTable, s, true)
	if !ok {
		return Value{}, errtrace.Wrap(ErrInvalidValue)
	}
	return newValue(buf, Visible), nil
}

// NewValueUnchecked constructs a header field value from a copy of b.
// Octets not allowed in a value are replaced with null octets, so the result
// always has the same length as b.
func NewValueUnchecked(b []byte) Value {
	buf, _ := normalize(&valueTable, b, false)
	return newValue(buf, Visible)
}

// StaticValue constructs a header field value from a trusted string literal.
// Invalid octets are replaced with null octets as in [NewValueUnchecked].
func StaticValue(s string) Value {
	buf, _ := normalize(&valueTable, s, false)
	return newValue(buf, Visible)
}

// SanitizeValue constructs a header field value from b dropping every octet
// not allowed in a value.
func SanitizeValue(b []byte) Value { return NewValueUnchecked(b).Clean() }

// Clean returns a new value with all null octets removed.
// The order of the remaining octets and the visibility are preserved.
func (v Value) Clean() Value { return newValue(strip(v.Bytes()), v.vis) }

// IntoSecret returns the same value marked as [Secret].
func (v Value) IntoSecret() Value {
	v.vis = Secret
	return v
}

// IntoVisible returns the same value marked as [Visible].
func (v Value) IntoVisible() Value {
	v.vis = Visible
	return v
}

// IsSecret reports whether the value is sensitive and must not be rendered.
func (v Value) IsSecret() bool { return v.vis == Secret }

// Visibility returns the current visibility of the value.
func (v Value) Visibility() Visibility { return v.vis }

// Bytes returns the value octets regardless of visibility.
// The returned slice shares memory with v and must not be modified.
func (v Value) Bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return *v.buf
}

// UTF8 returns the value content as a string regardless of visibility.
func (v Value) UTF8() string { return string(v.Bytes()) }

// Release hands the underlying buffer over to the caller.
// v must not be used after the call.
func (v Value) Release() []byte { return v.Bytes() }

// Len returns the number of octets in the value.
func (v Value) Len() int { return len(v.Bytes()) }

// IsZero reports whether the value is empty.
func (v Value) IsZero() bool { return v.Len() == 0 }

// IsValid reports whether the value contains no placeholder null octets.
func (v Value) IsValid() bool { return !hasNull(v.Bytes()) }

// IsFieldValue reports whether the value conforms to the RFC 9110 field-value rule,
// which additionally forbids leading and trailing whitespace.
func (v Value) IsFieldValue() bool { return grammar.IsFieldValue(v.Bytes()) }

// Equal compares the value content with another one, visibility is ignored.
// val can be Value or *Value.
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// Clone returns a deep copy of the value with the same visibility.
func (v Value) Clone() Value { return newValue(slices.Clone(v.Bytes()), v.vis) }

// String returns the value content, or [Redacted] for secret values.
func (v Value) String() string {
	if v.IsSecret() {
		return Redacted
	}
	return v.UTF8()
}

// GoString returns the Go-syntax representation used by %#v.
func (v Value) GoString() string {
	if v.IsSecret() {
		return "header.Value(" + Redacted + ")"
	}
	return "header.Value(" + strconv.Quote(v.UTF8()) + ")"
}

func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprint(f, v.GoString())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(v.String()))
		return
	default:
		if v.IsSecret() {
			fmt.Fprint(f, Redacted)
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.Bytes())
		return
	}
}

// LogValue implements [slog.LogValuer], secret values are logged as [Redacted].
func (v Value) LogValue() slog.Value { return slog.StringValue(v.String()) }

// MarshalText returns the value content, or [Redacted] for secret values.
// Secret values therefore do not survive a marshaling round trip.
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText validates text as [ParseValue] does, the result is always visible.
func (v *Value) UnmarshalText(text []byte) error {
	val, err := ParseValue(text)
	if err != nil {
		*v = Value{}
		return errtrace.Wrap(err)
	}
	*v = val
	return nil
}

// MarshalJSON encodes the value as a JSON string, see [Value.MarshalText].
func (v Value) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(json.Marshal(v.String())) }

// UnmarshalJSON decodes a JSON string and validates it as [ParseValue] does.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*v = Value{}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue, err))
	}
	return errtrace.Wrap(v.UnmarshalText([]byte(s)))
}
