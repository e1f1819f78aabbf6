package utils

import "encoding/json"

// StringList coerces an amenities-style value into a string slice. Fixture
// records carry amenity lists either as native slices or as JSON array text
// copied verbatim from a database column. Values that are neither yield
// nil, in which case the caller should fall back to rendering the raw
// value.
func StringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(t), &out); err != nil {
			return nil
		}
		return out
	}
	return nil
}
