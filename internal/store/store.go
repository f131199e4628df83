package store

import (
	"context"
	"errors"

	"github.com/rishbot91/todo-project/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for todo items and their tags.
type Store interface {
	// CreateTodo persists a new todo item together with its tag
	// associations in a single transaction. Missing tags are created,
	// existing ones are reused by name. The stored item, including its
	// assigned ID and creation timestamp, is returned.
	CreateTodo(ctx context.Context, todo model.TodoItem, tagNames []string) (*model.TodoItem, error)

	// UpdateTodo replaces the scalar fields of an existing todo item.
	// The creation timestamp is never touched. If tagNames is non-empty,
	// all existing tag associations are cleared and replaced with the
	// resolved set; an empty tagNames leaves associations unchanged.
	UpdateTodo(ctx context.Context, todo model.TodoItem, tagNames []string) (*model.TodoItem, error)

	// DeleteTodo removes a todo item and its tag associations.
	// Tag rows themselves are never deleted, even when orphaned.
	DeleteTodo(ctx context.Context, id string) error

	// GetTodoByID retrieves a single todo item with its tags.
	GetTodoByID(ctx context.Context, id string) (*model.TodoItem, error)

	// ListTodos retrieves all todo items ordered by creation time.
	ListTodos(ctx context.Context) ([]model.TodoItem, error)

	// GetTags retrieves all tags ordered by name.
	GetTags(ctx context.Context) ([]model.Tag, error)
}
