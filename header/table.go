package header

import (
	"bytes"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

// nameTable and valueTable map every input octet to itself when it is legal in
// the context, and to 0 otherwise.
var nameTable = [256]byte{
	'-': '-', '0': '0', '1': '1', '2': '2', '3': '3', '4': '4', '5': '5', '6': '6',
	'7': '7', '8': '8', '9': '9', 'A': 'A', 'B': 'B', 'C': 'C', 'D': 'D', 'E': 'E',
	'F': 'F', 'G': 'G', 'H': 'H', 'I': 'I', 'J': 'J', 'K': 'K', 'L': 'L', 'M': 'M',
	'N': 'N', 'O': 'O', 'P': 'P', 'Q': 'Q', 'R': 'R', 'S': 'S', 'T': 'T', 'U': 'U',
	'V': 'V', 'W': 'W', 'X': 'X', 'Y': 'Y', 'Z': 'Z', '_': '_', 'a': 'a', 'b': 'b',
	'c': 'c', 'd': 'd', 'e': 'e', 'f': 'f', 'g': 'g', 'h': 'h', 'i': 'i', 'j': 'j',
	'k': 'k', 'l': 'l', 'm': 'm', 'n': 'n', 'o': 'o', 'p': 'p', 'q': 'q', 'r': 'r',
	's': 's', 't': 't', 'u': 'u', 'v': 'v', 'w': 'w', 'x': 'x', 'y': 'y', 'z': 'z',
}

var valueTable = [256]byte{
	'\t': '\t', ' ': ' ', '!': '!', '"': '"', '#': '#', '$': '$', '%': '%', '&': '&',
	'\'': '\'', '(': '(', ')': ')', '*': '*', '+': '+', ',': ',', '-': '-', '.': '.',
	'/': '/', '0': '0', '1': '1', '2': '2', '3': '3', '4': '4', '5': '5', '6': '6',
	'7': '7', '8': '8', '9': '9', ':': ':', ';': ';', '<': '<', '=': '=', '>': '>',
	'?': '?', '@': '@', 'A': 'A', 'B': 'B', 'C': 'C', 'D': 'D', 'E': 'E', 'F': 'F',
	'G': 'G', 'H': 'H', 'I': 'I', 'J': 'J', 'K': 'K', 'L': 'L', 'M': 'M', 'N': 'N',
	'O': 'O', 'P': 'P', 'Q': 'Q', 'R': 'R', 'S': 'S', 'T': 'T', 'U': 'U', 'V': 'V',
	'W': 'W', 'X': 'X', 'Y': 'Y', 'Z': 'Z', '[': '[', '\\': '\\', ']': ']', '^': '^',
	'_': '_', '`': '`', 'a': 'a', 'b': 'b', 'c': 'c', 'd': 'd', 'e': 'e', 'f': 'f',
	'g': 'g', 'h': 'h', 'i': 'i', 'j': 'j', 'k': 'k', 'l': 'l', 'm': 'm', 'n': 'n',
	'o': 'o', 'p': 'p', 'q': 'q', 'r': 'r', 's': 's', 't': 't', 'u': 'u', 'v': 'v',
	'w': 'w', 'x': 'x', 'y': 'y', 'z': 'z', '{': '{', '|': '|', '}': '}', '~': '~',
}

// ClassifyNameByte returns the canonical form of c for a header field name,
// or 0 if c can not appear in a name.
func ClassifyNameByte(c byte) byte { return nameTable[c] }

// ClassifyValueByte returns the canonical form of c for a header field value,
// or 0 if c can not appear in a value.
func ClassifyValueByte(c byte) byte { return valueTable[c] }

// normalize maps each octet of s through the table t into a new buffer.
// In strict mode it stops at the first rejected octet and reports false.
func normalize[T constraints.Byteseq](t *[256]byte, s T, strict bool) ([]byte, bool) {
	buf := make([]byte, len(s))
	for i := range len(s) {
		c := t[s[i]]
		if c == 0 && strict {
			return nil, false
		}
		buf[i] = c
	}
	return buf, true
}

// strip returns a new buffer with all placeholder nulls of b removed.
func strip(b []byte) []byte {
	buf := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0 {
			buf = append(buf, c)
		}
	}
	return buf
}

func hasNull(b []byte) bool { return bytes.IndexByte(b, 0) >= 0 }
