// Package template analyzes the template string literal of a marker call.
//
// Templates reference enclosing-scope variables with ${name} interpolation
// markers, e.g. "Add ${x} and ${y}".
package template

import "regexp"

var markerRe = regexp.MustCompile(`\$\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// ExtractVariables returns the variable names referenced by the template in
// first-occurrence order. Duplicate references collapse to a single entry;
// each distinct name is resolved against the enclosing scope exactly once.
func ExtractVariables(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range markerRe.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Render strips interpolation markers, producing prose suitable for a
// metadata description field: "Add ${x} and ${y}" becomes "Add x and y".
func Render(template string) string {
	return markerRe.ReplaceAllString(template, "$1")
}
