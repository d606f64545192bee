package templates

import "strings"

// Filter keeps the names whose display name contains every word of query,
// case-insensitively. An empty query keeps everything.
func Filter(names []string, query string) []string {
	kw := strings.Fields(strings.ToLower(query))
	var out []string
	for _, n := range names {
		dn := strings.ToLower(DisplayName(n))
		ok := true
		for _, k := range kw {
			if !strings.Contains(dn, k) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, n)
		}
	}
	return out
}
