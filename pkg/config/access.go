package config

import "strings"

// Lookup walks the effective configuration along keys.
func (r *Resolved) Lookup(keys ...string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	var cur interface{} = r.Effective
	for _, key := range keys {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// LookupPath is Lookup with a dotted path such as "system.logging.error_level".
// An empty path returns the whole effective configuration.
func (r *Resolved) LookupPath(path string) (interface{}, bool) {
	path = strings.Trim(path, ".")
	if path == "" {
		return r.Lookup()
	}
	return r.Lookup(strings.Split(path, ".")...)
}
