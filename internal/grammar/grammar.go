// Package grammar implements the RFC 9110 rules for header field names and values
// on top of ABNF operators.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// IsToken reports whether s is a non-empty RFC 9110 token.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Token([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsFieldValue reports whether s is an RFC 9110 field-value without obs-text.
// Empty input is a valid field-value.
func IsFieldValue[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	if isWS(s[0]) || isWS(s[len(s)-1]) {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := FieldValue([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

func isWS(c byte) bool { return c == ' ' || c == '\t' }
