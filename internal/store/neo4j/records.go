package neo4j

import "strconv"

// record is one flat query result row keyed by declared output field name.
// Values carry the driver's native types (int64, float64, string, bool, nil);
// the accessors below coerce them to plain Go types so nothing above this
// package handles driver representations.
type record map[string]any

// float returns the value as a float64. Neo4j aggregates such as sum() over
// integer properties come back as int64, so both numeric widths are accepted.
func (r record) float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// integer returns the value as an int64, truncating a float if the store
// produced one.
func (r record) integer(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// str returns the value as a string. Null properties (absent user names,
// pseudonyms, images) become the empty string.
func (r record) str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// epochString renders an integer value as its decimal string, the wire format
// the dashboard expects for trade timestamps.
func (r record) epochString(key string) string {
	return strconv.FormatInt(r.integer(key), 10)
}

// strings returns a list value as a string slice, skipping non-string
// elements.
func (r record) strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
