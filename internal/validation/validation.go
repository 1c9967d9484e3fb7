// Package validation holds the ordered validation rule lists for each
// entity. A rule is a pure function from (candidate record, store lookup)
// to pass/fail-with-reason; rules never mutate anything.
package validation

// NonFieldErrors keys cross-field failures that belong to no single field
const NonFieldErrors = "non_field_errors"

// Errors maps a field name to its failure messages
type Errors map[string][]string

// Add appends a message to a field's error list
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no rule failed
func (e Errors) Empty() bool {
	return len(e) == 0
}
