//go:build unit || e2e

package testutil

// Field returns a mutation that sets key to value on a request map.
// A nil value removes the key instead.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
