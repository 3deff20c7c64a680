package header

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Name represents a header field name.
//
// A Name built with [NewName] or [ParseName] contains only ASCII letters, digits,
// hyphens and underscores. Names built with [NewNameUnchecked] or [StaticName] may
// carry placeholder null octets in place of rejected input, use [Name.Clean] to drop them.
//
// The zero Name is an empty name.
type Name struct {
	buf []byte
}

// NewName constructs a header field name from a copy of b.
// It returns [ErrInvalidName] if b contains any octet not allowed in a name.
func NewName(b []byte) (Name, error) { return errtrace.Wrap2(ParseName(b)) }

// ParseName constructs a header field name from the given input s (string or []byte).
// It behaves exactly like [NewName].
func ParseName[T constraints.Byteseq](s T) (Name, error) {
	buf, ok := normalize(&nameTable, s, true)
	if !ok {
		return Name{}, errtrace.Wrap(ErrInvalidName)
	}
	return Name{buf}, nil
}

// NewNameUnchecked constructs a header field name from a copy of b.
// Octets not allowed in a name are replaced with null octets, so the result
// always has the same length as b.
func NewNameUnchecked(b []byte) Name {
	buf, _ := normalize(&nameTable, b, false)
	return Name{buf}
}

// StaticName constructs a header field name from a trusted string literal.
// Invalid octets are replaced with null octets as in [NewNameUnchecked].
func StaticName(s string) Name {
	buf, _ := normalize(&nameTable, s, false)
	return Name{buf}
}

// SanitizeName constructs a header field name from b dropping every octet
// not allowed in a name.
func SanitizeName(b []byte) Name { return NewNameUnchecked(b).Clean() }

// Clean returns a new name with all null octets removed.
// The order of the remaining octets is preserved.
func (n Name) Clean() Name { return Name{strip(n.buf)} }

// Bytes returns the name octets.
// The returned slice shares memory with n and must not be modified.
func (n Name) Bytes() []byte { return n.buf }

// UTF8 returns the name as a string.
func (n Name) UTF8() string { return string(n.buf) }

func (n Name) String() string { return n.UTF8() }

// Release hands the underlying buffer over to the caller.
// n must not be used after the call.
func (n Name) Release() []byte { return n.buf }

// Len returns the number of octets in the name.
func (n Name) Len() int { return len(n.buf) }

// IsZero reports whether the name is empty.
func (n Name) IsZero() bool { return len(n.buf) == 0 }

// IsValid reports whether the name contains no placeholder null octets.
func (n Name) IsValid() bool { return !hasNull(n.buf) }

// IsToken reports whether the name is a non-empty RFC 9110 token.
func (n Name) IsToken() bool { return grammar.IsToken(n.buf) }

// Equal compares the name with another one octet by octet.
// val can be Name or *Name.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return bytes.Equal(n.buf, other.buf)
}

// Clone returns a deep copy of the name.
func (n Name) Clone() Name { return Name{slices.Clone(n.buf)} }

func (n Name) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "header.Name(%q)", n.buf)
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, 's'), n.UTF8())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(n.UTF8()))
		return
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.buf)
		return
	}
}

// LogValue implements [slog.LogValuer].
func (n Name) LogValue() slog.Value { return slog.StringValue(n.UTF8()) }

func (n Name) MarshalText() ([]byte, error) { return slices.Clone(n.buf), nil }

// UnmarshalText validates text as [ParseName] does.
func (n *Name) UnmarshalText(text []byte) error {
	v, err := ParseName(text)
	if err != nil {
		*n = Name{}
		return errtrace.Wrap(err)
	}
	*n = v
	return nil
}
