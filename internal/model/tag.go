package model

// Tag is a named label shared across todo items. Tags are created implicitly
// when a todo item references an unknown name, are never mutated, and outlive
// the deletion of any item referencing them.
type Tag struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
