package todo

import (
	"context"
	"time"

	"github.com/rishbot91/todo-project/internal/model"
	"github.com/rishbot91/todo-project/internal/store"
)

// Service implements create/read/update/delete over todo items. It validates
// input before touching storage and leaves authentication to the transport
// layer; any authenticated caller sees and mutates all items.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService returns a Service backed by st.
func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Create validates in and persists a new todo item with its tags in one
// transaction. The item is returned with its assigned ID and timestamp.
func (s *Service) Create(ctx context.Context, in Input) (*model.TodoItem, error) {
	if errs := Validate(in, s.now()); errs != nil {
		return nil, errs
	}

	item := model.TodoItem{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      statusOrDefault(in.Status),
	}
	return s.store.CreateTodo(ctx, item, in.TagNames)
}

// Get retrieves a single todo item by ID.
func (s *Service) Get(ctx context.Context, id string) (*model.TodoItem, error) {
	return s.store.GetTodoByID(ctx, id)
}

// List retrieves all todo items ordered by creation time.
func (s *Service) List(ctx context.Context) ([]model.TodoItem, error) {
	return s.store.ListTodos(ctx)
}

// Update validates in and replaces the scalar fields of the item with the
// given ID. The creation timestamp is never changed. A non-empty tag list
// replaces the item's tag set wholesale; an empty list leaves the existing
// tags attached (it does NOT clear them, unlike create where no tags means
// no tags).
func (s *Service) Update(ctx context.Context, id string, in Input) (*model.TodoItem, error) {
	if errs := Validate(in, s.now()); errs != nil {
		return nil, errs
	}

	item := model.TodoItem{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      statusOrDefault(in.Status),
	}
	return s.store.UpdateTodo(ctx, item, in.TagNames)
}

// Delete removes the item with the given ID along with its tag associations.
// Tags referenced by the item survive for reuse by other items.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteTodo(ctx, id)
}

// statusOrDefault maps an omitted status to the OPEN default. Explicit
// values, including the empty string, are validated before reaching here.
func statusOrDefault(status *string) model.Status {
	if status == nil {
		return model.StatusOpen
	}
	return model.Status(*status)
}
