package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rishbot91/todo-project/internal/model"
)

// resolveTag looks up a tag by exact name within tx, creating it if absent.
// Names carry no unique index, so the oldest row wins on lookup; SQLite's
// single-writer transaction keeps concurrent first-use from racing in
// practice.
func resolveTag(ctx context.Context, tx *sqlx.Tx, name string) (model.Tag, error) {
	var tag model.Tag
	err := tx.QueryRowxContext(ctx,
		"SELECT id, name FROM tags WHERE name = ? ORDER BY rowid LIMIT 1",
		name).Scan(&tag.ID, &tag.Name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, fmt.Errorf("looking up tag %q: %w", name, err)
	}

	tag = model.Tag{ID: uuid.New().String(), Name: name}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO tags (id, name) VALUES (?, ?)",
		tag.ID, tag.Name); err != nil {
		return model.Tag{}, fmt.Errorf("creating tag %q: %w", name, err)
	}
	return tag, nil
}

// tagsForTodo retrieves all tags attached to a todo, in the order the
// associations were written. That order round-trips what the caller
// originally submitted.
func (s *SQLiteStore) tagsForTodo(
	ctx context.Context,
	todoID string,
) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT t.id, t.name FROM tags t
		INNER JOIN todo_tags tt ON t.id = tt.tag_id
		WHERE tt.todo_id = ?
		ORDER BY tt.rowid`, todoID)
	if err != nil {
		return nil, fmt.Errorf("querying tags for todo %s: %w", todoID, err)
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetTags retrieves all tags ordered by name.
func (s *SQLiteStore) GetTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
