package header

import (
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/syncutil"
)

var sensitiveNames syncutil.RWMap[string, Name]

func init() {
	RegisterSensitive(
		StaticName("Authorization"),
		StaticName("Proxy-Authorization"),
		StaticName("Cookie"),
		StaticName("Set-Cookie"),
		StaticName("X-Api-Key"),
		StaticName("X-Auth-Token"),
	)
}

// RegisterSensitive marks header field names whose values carry credentials.
// Names are matched case-insensitively. Names that are not valid are ignored.
func RegisterSensitive(names ...Name) {
	for _, n := range names {
		if n.IsZero() || !n.IsValid() {
			continue
		}
		sensitiveNames.Set(sensitiveKey(n.buf), n.Clone())
	}
}

// UnregisterSensitive removes names previously registered with [RegisterSensitive].
func UnregisterSensitive(names ...Name) {
	for _, n := range names {
		sensitiveNames.Del(sensitiveKey(n.buf))
	}
}

// IsSensitive reports whether the header field name (string or []byte) is registered
// as sensitive.
func IsSensitive[T constraints.Byteseq](name T) bool {
	return sensitiveNames.Has(sensitiveKey(name))
}

// IsSensitive reports whether the name is registered as sensitive.
func (n Name) IsSensitive() bool { return IsSensitive(n.buf) }

// SensitiveNames returns all registered sensitive names ordered case-insensitively.
func SensitiveNames() []Name {
	names := make(map[string]Name, sensitiveNames.Len())
	for k, n := range sensitiveNames.All() {
		names[k] = n
	}
	out := make([]Name, 0, len(names))
	for _, k := range slices.Sorted(maps.Keys(names)) {
		out = append(out, names[k])
	}
	return out
}

// NewFieldValue validates raw as [NewValue] does and marks the result as [Secret]
// when name is registered as sensitive.
func NewFieldValue(name Name, raw []byte) (Value, error) {
	v, err := NewValue(raw)
	if err != nil {
		return Value{}, errtrace.Wrap(err)
	}
	if name.IsSensitive() {
		v = v.IntoSecret()
	}
	return v, nil
}

func sensitiveKey[T constraints.Byteseq](name T) string {
	return strings.ToLower(string(name))
}
