package todo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishbot91/todo-project/internal/model"
	"github.com/rishbot91/todo-project/internal/store"
	"github.com/rishbot91/todo-project/internal/todo"
	"github.com/rishbot91/todo-project/tests/testutil"
)

func strPtr(s string) *string {
	return &s
}

func newService(t *testing.T) (*todo.Service, *store.SQLiteStore) {
	t.Helper()
	st := testutil.NewTestStore(t)
	return todo.NewService(st), st
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour)
	item, err := svc.Create(ctx, todo.Input{
		Title:       "Finish report",
		Description: "Complete the annual report.",
		DueDate:     &due,
		Status:      strPtr("OPEN"),
		TagNames:    []string{"Work"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.Timestamp.IsZero())
	require.Len(t, item.Tags, 1)
	assert.Equal(t, "Work", item.Tags[0].Name)
}

func TestServiceCreateOmittedStatusDefaultsToOpen(t *testing.T) {
	svc, _ := newService(t)

	item, err := svc.Create(context.Background(), todo.Input{
		Title:       "No status",
		Description: "Defaults to OPEN.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, item.Status)
}

func TestServiceCreateEmptyStatusIsRejected(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, todo.Input{
		Title:       "Empty status",
		Description: "An explicit empty string is not a choice.",
		Status:      strPtr(""),
	})

	var fieldErrs todo.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs["status"], `"" is not a valid choice.`)

	todos, err := st.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestServiceCreateRejectsInvalidInputWithoutPersisting(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	past := time.Now().Add(-24 * time.Hour)
	_, err := svc.Create(ctx, todo.Input{
		Title:       "Past Task",
		Description: "This task has a past due date.",
		DueDate:     &past,
		Status:      strPtr("OPEN"),
	})

	var fieldErrs todo.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs["due_date"], todo.MsgPastDueDate)

	todos, err := st.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestServiceCreateDuplicateTagsNoMutation(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, todo.Input{
		Title:       "Duplicate Tags",
		Description: "Testing duplicate tags.",
		Status:      strPtr("OPEN"),
		TagNames:    []string{"X", "X"},
	})

	var fieldErrs todo.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs["tags"], todo.MsgDuplicateTags)

	// Neither the item nor any tag row was written.
	todos, err := st.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	tags, err := st.GetTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestServiceUpdateEmptyTagListLeavesTags(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, todo.Input{
		Title:       "Tagged",
		Description: "Initial description.",
		Status:      strPtr("OPEN"),
		TagNames:    []string{"Work"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, todo.Input{
		Title:       "Tagged",
		Description: "Updated description.",
		Status:      strPtr("WORKING"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusWorking, updated.Status)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Work", updated.Tags[0].Name)
}

func TestServiceUpdateValidatesBeforeWrite(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, todo.Input{
		Title:       "Initial",
		Description: "Initial description.",
		Status:      strPtr("OPEN"),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, todo.Input{
		Title:       "",
		Description: "Updated description.",
		Status:      strPtr("BOGUS"),
	})

	var fieldErrs todo.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs["title"], todo.MsgBlank)
	assert.Contains(t, fieldErrs["status"], `"BOGUS" is not a valid choice.`)

	// The stored item is untouched.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Initial", got.Title)
	assert.Equal(t, model.StatusOpen, got.Status)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(context.Background(), "missing", todo.Input{
		Title:       "x",
		Description: "y",
		Status:      strPtr("OPEN"),
	})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestServiceDeleteThenGet(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, todo.Input{
		Title:       "Doomed",
		Description: "Will be deleted.",
		Status:      strPtr("OPEN"),
		TagNames:    []string{"Work"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
