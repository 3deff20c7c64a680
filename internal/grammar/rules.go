package grammar

import "github.com/ghettovoice/abnf"

// RFC 9110 Section 5.6.2 and 5.5.

func char(key string, c byte) abnf.Operator {
	return abnf.Range(key, []byte{c}, []byte{c})
}

var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("ALPHA", []byte{'A'}, []byte{'Z'}),
		abnf.Range("ALPHA", []byte{'a'}, []byte{'z'}),
	)
	digit = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
	vchar = abnf.Range("VCHAR", []byte{0x21}, []byte{0x7e})
	sp    = char("SP", ' ')
	htab  = char("HTAB", '\t')

	tchar = abnf.Alt(
		"tchar",
		char("tchar", '!'),
		char("tchar", '#'),
		char("tchar", '$'),
		char("tchar", '%'),
		char("tchar", '&'),
		char("tchar", '\''),
		char("tchar", '*'),
		char("tchar", '+'),
		char("tchar", '-'),
		char("tchar", '.'),
		char("tchar", '^'),
		char("tchar", '_'),
		char("tchar", '`'),
		char("tchar", '|'),
		char("tchar", '~'),
		digit,
		alpha,
	)

	token = abnf.Repeat1Inf("token", tchar)

	// field-value without the edge constraint of field-content,
	// IsFieldValue checks the first and last octets separately.
	fieldChars = abnf.Repeat0Inf("field-value", abnf.Alt("field-char", sp, htab, vchar))
)

func Token(s []byte, ns *abnf.Nodes) error {
	return token(s, 0, ns) //errtrace:skip
}

func FieldValue(s []byte, ns *abnf.Nodes) error {
	return fieldChars(s, 0, ns) //errtrace:skip
}
