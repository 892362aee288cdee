//go:build unit || e2e

package testutil

// Field returns a DtoMap mutation that sets key to value; a nil value removes
// the key, simulating a client that omitted it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
