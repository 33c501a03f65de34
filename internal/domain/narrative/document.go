// Package narrative models AI-generated narrative content: the raw generation
// documents, the persisted records keyed by subject(s)+language, and the typed
// projections exposed to callers.
package narrative

// Document is the raw generation payload: a string-keyed map of dynamically
// typed values, preserved verbatim for forward compatibility. Typed access
// goes through the projection functions in this package.
type Document map[string]any

// str returns a string value, or "" when the key is absent or not a string.
func (d Document) str(key string) string {
	s, _ := d[key].(string)
	return s
}

// strMap returns a nested object with string values. Non-string entries are skipped.
func (d Document) strMap(key string) map[string]string {
	raw, ok := d[key].(map[string]any)
	if !ok {
		return nil
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			m[k] = s
		}
	}
	return m
}

// objMap returns a nested object value, or nil when absent or ill-typed.
func (d Document) objMap(key string) map[string]any {
	m, _ := d[key].(map[string]any)
	return m
}

// strSlice returns a list of strings. Non-string elements are skipped.
func (d Document) strSlice(key string) []string {
	return toStrSlice(d[key])
}

func toStrSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
