package header

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/httphdr/internal/errorutil"

const (
	// ErrInvalidName is returned when the input contains at least one octet
	// that can not appear in a header field name.
	ErrInvalidName errorutil.Error = "invalid header field name"
	// ErrInvalidValue is returned when the input contains at least one octet
	// that can not appear in a header field value.
	ErrInvalidValue errorutil.Error = "invalid header field value"
)
