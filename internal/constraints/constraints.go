// Package constraints holds generic type constraints shared by the header packages.
package constraints

// Byteseq is satisfied by any string or byte slice type, so constructors can accept
// both raw wire bytes and string literals without a conversion at the call site.
type Byteseq interface {
	~string | ~[]byte
}
