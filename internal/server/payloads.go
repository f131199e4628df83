package server

import (
	"time"

	"github.com/rishbot91/todo-project/internal/todo"
)

// tagIn is a tag as submitted by a client. The id, if present, is read-only
// and ignored; tags are always matched or created by name.
type tagIn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// todoIn is the request body for create and update. Both operations take the
// full set of writable fields; timestamp is system-assigned and never
// accepted from the client. Pointer fields distinguish omitted from
// explicitly empty: an omitted status defaults to OPEN downstream, while an
// empty string is rejected as an invalid choice.
type todoIn struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	Tags        []tagIn `json:"tags"`
}

const msgBadDatetime = "Datetime has wrong format. Use ISO 8601 instead."

// toInput converts the wire payload into a core Input, parsing the due date.
// An unparseable due date is reported as a field error rather than a generic
// bad-request so it lands in the same payload shape as validation failures.
// Only null or an omitted field means "no due date"; an empty string is a
// format error like any other unparseable value.
func (in todoIn) toInput() (todo.Input, todo.FieldErrors) {
	out := todo.Input{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	}

	if in.DueDate != nil {
		t, err := time.Parse(time.RFC3339, *in.DueDate)
		if err != nil {
			return todo.Input{}, todo.FieldErrors{"due_date": {msgBadDatetime}}
		}
		out.DueDate = &t
	}

	for _, tag := range in.Tags {
		out.TagNames = append(out.TagNames, tag.Name)
	}

	return out, nil
}
