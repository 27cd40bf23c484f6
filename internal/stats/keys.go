package stats

import "strings"

// Prefixes used by aggregate records.
const (
	TotalPrefix   = "total_"
	AveragePrefix = "avg_"
)

var prefixes = []string{"", TotalPrefix, AveragePrefix}

// variants maps lowercase spellings to canonical keys for every statistic
// whose canonical key is not already lowercase.
var variants = func() map[string]string {
	m := make(map[string]string)
	for _, d := range definitions {
		lower := strings.ToLower(d.key)
		if lower == d.key {
			continue
		}
		for _, p := range prefixes {
			m[p+lower] = p + d.key
		}
	}
	return m
}()

// NormalizeKeys returns a copy of record with lowercase statistic keys
// (bare or with a total_/avg_ prefix) renamed to their canonical form.
// A variant is left in place when its canonical key is already present.
func NormalizeKeys(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	for k, v := range record {
		canonical, ok := variants[k]
		if !ok {
			continue
		}
		if _, exists := out[canonical]; exists {
			continue
		}
		out[canonical] = v
		delete(out, k)
	}
	return out
}

// Lookup resolves a statistic from its key in any supported spelling,
// with or without a total_/avg_ prefix.
func Lookup(key string) (Stat, bool) {
	key = strings.TrimSpace(key)
	for _, p := range prefixes[1:] {
		if len(key) > len(p) && strings.EqualFold(key[:len(p)], p) {
			key = key[len(p):]
			break
		}
	}
	for s, d := range definitions {
		if d.key == key || strings.EqualFold(d.key, key) {
			return Stat(s), true
		}
	}
	return 0, false
}
