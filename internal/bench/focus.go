package bench

import "strings"

// ParseFocus splits a comma separated list of name prefixes, dropping empty
// entries.
func ParseFocus(s string) []string {
	var focus []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			focus = append(focus, p)
		}
	}
	return focus
}

// focused reports whether a config runs under focus. Each prefix is matched
// against both "<family>_<config>" and "<config>". An empty focus runs
// everything.
func focused(focus []string, family, name string) bool {
	if len(focus) == 0 {
		return true
	}
	full := family + "_" + name
	for _, p := range focus {
		if strings.HasPrefix(full, p) || strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
