package fetcher

// mergeMaps deep-merges src over dst into a new map. Nested maps merge key by key
// and slices merge element by element. Neither input is modified.
func mergeMaps(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}

	for k, v := range src {
		out[k] = mergeValue(out[k], v)
	}

	return out
}

func mergeValue(dst, src interface{}) interface{} {
	switch s := src.(type) {
	case map[string]interface{}:
		if d, ok := dst.(map[string]interface{}); ok {
			return mergeMaps(d, s)
		}
	case []interface{}:
		if d, ok := dst.([]interface{}); ok {
			size := len(d)
			if len(s) > size {
				size = len(s)
			}

			out := make([]interface{}, size)
			copy(out, d)

			for i, v := range s {
				out[i] = mergeValue(out[i], v)
			}

			return out
		}
	}

	return src
}
