package model

import "time"

// Status is the lifecycle state of a todo item.
type Status string

// Todo status values. Any write carrying a status outside this set is
// rejected before it reaches storage.
const (
	StatusOpen          Status = "OPEN"
	StatusWorking       Status = "WORKING"
	StatusPendingReview Status = "PENDING REVIEW"
	StatusCompleted     Status = "COMPLETED"
	StatusOverdue       Status = "OVERDUE"
	StatusCancelled     Status = "CANCELLED"
)

// statuses is the closed set of valid Status values.
var statuses = map[Status]bool{
	StatusOpen:          true,
	StatusWorking:       true,
	StatusPendingReview: true,
	StatusCompleted:     true,
	StatusOverdue:       true,
	StatusCancelled:     true,
}

// Valid reports whether s is one of the six known status values.
func (s Status) Valid() bool {
	return statuses[s]
}

// Field length limits enforced at validation time.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxTagNameLen     = 30
)

// TodoItem is a task record with a title, description, optional due date,
// status, and a set of shared tags.
type TodoItem struct {
	ID          string     `json:"id" db:"id"`
	Timestamp   time.Time  `json:"timestamp" db:"timestamp"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	Status      Status     `json:"status" db:"status"`

	// Tags is populated by queries that join with todo_tags,
	// in join-row insertion order.
	Tags []Tag `json:"tags" db:"-"`
}
