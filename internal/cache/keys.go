package cache

import (
	"sort"
	"strings"
)

// FormatVersion is baked into every cache key so payload format changes
// invalidate stale entries without a manual purge.
const FormatVersion = "v2"

const keyPrefix = "arenaduo"

// Key builds a cache key from a scope and normalized parameters. Parameter
// values are lower-cased and the fields are emitted in canonical (sorted)
// order, so two requests that differ only in query ordering or identifier
// casing share a key.
func Key(scope string, params map[string]string) string {
	fields := make([]string, 0, len(params))
	for name := range params {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteByte(':')
	b.WriteString(FormatVersion)
	b.WriteByte(':')
	b.WriteString(scope)
	for _, name := range fields {
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strings.ToLower(params[name]))
	}
	return b.String()
}
