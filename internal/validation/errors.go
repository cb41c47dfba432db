package validation

import (
	"sort"
	"strings"
)

// Errors maps a JSON field name to the human readable violations found on it.
// A non-empty Errors is the ValidationError of the catalog.
type Errors map[string][]string

// Add records a violation for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether field has at least one violation.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Merge copies every violation of other into e.
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		for _, m := range messages {
			e.Add(field, m)
		}
	}
}

// Err returns e as an error, or nil when there are no violations.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		for _, m := range e[f] {
			parts = append(parts, f+" "+m)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Single builds an Errors holding one violation.
func Single(field, message string) Errors {
	return Errors{field: {message}}
}
