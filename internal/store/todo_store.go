package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rishbot91/todo-project/internal/model"
)

// CreateTodo inserts a new todo item and attaches its tags atomically.
// A UUID and creation timestamp are assigned here; both are immutable
// afterwards.
func (s *SQLiteStore) CreateTodo(
	ctx context.Context,
	todo model.TodoItem,
	tagNames []string,
) (*model.TodoItem, error) {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.Timestamp = time.Now().UTC()
	if todo.Status == "" {
		todo.Status = model.StatusOpen
	}
	if todo.DueDate != nil {
		utc := todo.DueDate.UTC()
		todo.DueDate = &utc
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO todos (id, timestamp, title, description, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.Timestamp, todo.Title, todo.Description,
		todo.DueDate, todo.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	tags, err := attachTags(ctx, tx, todo.ID, tagNames)
	if err != nil {
		return nil, err
	}
	todo.Tags = tags

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing todo %s: %w", todo.ID, err)
	}
	return &todo, nil
}

// UpdateTodo replaces the scalar fields of an existing todo item.
// The creation timestamp is left untouched. When tagNames is non-empty the
// existing tag associations are cleared and rebuilt from the resolved set;
// an empty tagNames leaves the associations as they are.
func (s *SQLiteStore) UpdateTodo(
	ctx context.Context,
	todo model.TodoItem,
	tagNames []string,
) (*model.TodoItem, error) {
	if todo.DueDate != nil {
		utc := todo.DueDate.UTC()
		todo.DueDate = &utc
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE todos SET title = ?, description = ?, due_date = ?, status = ?
		WHERE id = ?`,
		todo.Title, todo.Description, todo.DueDate, todo.Status, todo.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %s: %w", todo.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("todo %s: %w", todo.ID, ErrNotFound)
	}

	if len(tagNames) > 0 {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM todo_tags WHERE todo_id = ?", todo.ID); err != nil {
			return nil, fmt.Errorf("clearing tags for todo %s: %w", todo.ID, err)
		}
		if _, err := attachTags(ctx, tx, todo.ID, tagNames); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing todo %s: %w", todo.ID, err)
	}

	return s.GetTodoByID(ctx, todo.ID)
}

// DeleteTodo removes a todo item by ID. The CASCADE on todo_tags removes its
// associations; tag rows stay behind even when no longer referenced.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetTodoByID retrieves a single todo item by ID, including its tags.
func (s *SQLiteStore) GetTodoByID(
	ctx context.Context,
	id string,
) (*model.TodoItem, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, timestamp, title, description, due_date, status FROM todos WHERE id = ?",
		id)

	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting todo %s: %w", id, err)
	}

	tags, err := s.tagsForTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	todo.Tags = tags

	return &todo, nil
}

// ListTodos retrieves all todo items ordered by creation time.
func (s *SQLiteStore) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, timestamp, title, description, due_date, status FROM todos ORDER BY timestamp, id")
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []model.TodoItem
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range todos {
		tags, err := s.tagsForTodo(ctx, todos[i].ID)
		if err != nil {
			return nil, err
		}
		todos[i].Tags = tags
	}

	return todos, nil
}

// attachTags resolves each name to a tag within tx and inserts the join rows
// for todoID. The resolved tags are returned in submitted order.
func attachTags(
	ctx context.Context,
	tx *sqlx.Tx,
	todoID string,
	tagNames []string,
) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := resolveTag(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO todo_tags (todo_id, tag_id) VALUES (?, ?)",
			todoID, tag.ID); err != nil {
			return nil, fmt.Errorf("attaching tag %s to todo %s: %w", tag.ID, todoID, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// scanTodo scans a todo row from a sqlx row or result set.
func scanTodo(row interface{ Scan(dest ...interface{}) error }) (model.TodoItem, error) {
	var (
		todo    model.TodoItem
		dueDate *time.Time
	)

	err := row.Scan(
		&todo.ID, &todo.Timestamp, &todo.Title, &todo.Description,
		&dueDate, &todo.Status,
	)
	if err != nil {
		return model.TodoItem{}, err
	}

	todo.DueDate = dueDate
	return todo, nil
}
