package core

import "strings"

// Ordering is a single sort criterion, e.g. `-name` => {Field: "name", Ascending: false}.
type Ordering struct {
	Field     string
	Ascending bool
}

// ParseOrderings parses comma separated fields, e.g. "name,-id"; a leading "-" sorts descending.
func ParseOrderings(s string) []Ordering {
	var orderings []Ordering
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		orderings = append(orderings, Ordering{Field: field, Ascending: !descending})
	}
	return orderings
}
