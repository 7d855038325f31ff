//go:build unit || e2e

package testutil

// Field sets key to value in the body map; a nil value removes the key
// instead, so table cases can express both overrides and omissions.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
