package validate

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field path to the list of human-readable violation
// messages for it. It is the error kind for all local validation failures,
// distinct from remote API errors, and is never retried.
type FieldErrors struct {
	Fields map[string][]string
}

// NewFieldErrors returns an empty violation map.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

// Add appends a violation message for a field path.
func (e *FieldErrors) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has reports whether any violation was recorded for a field path.
func (e *FieldErrors) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Empty reports whether no violations were recorded.
func (e *FieldErrors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *FieldErrors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	fmt.Fprintf(&b, "validation failed on %d field(s):", len(fields))
	for _, field := range fields {
		fmt.Fprintf(&b, " %s %s;", field, strings.Join(e.Fields[field], ", "))
	}
	return strings.TrimSuffix(b.String(), ";")
}
