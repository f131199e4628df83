// Package todo holds the application core for todo items: input validation,
// tag-name rules, and the service composing them over the persistence layer.
package todo

import (
	"sort"
	"strings"
)

// Validation messages for user-facing field errors.
const (
	MsgBlank         = "This field may not be blank."
	MsgPastDueDate   = "Due date cannot be in the past."
	MsgDuplicateTags = "Duplicate tags are not allowed for a single TodoItem."
)

// FieldErrors maps a field name to the list of messages describing why the
// submitted value was rejected. It is returned whole so callers can surface
// every failing field at once.
type FieldErrors map[string][]string

// Error implements the error interface, naming the failing fields.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// add appends a message for a field.
func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}
