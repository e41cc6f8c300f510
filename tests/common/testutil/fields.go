//go:build unit || e2e

package testutil

// mutates a single key in a request map; nil deletes the key
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
