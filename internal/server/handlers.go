package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rishbot91/todo-project/internal/model"
	"github.com/rishbot91/todo-project/internal/todo"
)

// NewListTodosHandler returns all todo items as a JSON array.
func NewListTodosHandler(log *slog.Logger, svc *todo.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.List(ctx)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		if items == nil {
			items = []model.TodoItem{}
		}
		writeJSON(w, items, http.StatusOK)
	}
}

// NewCreateTodoHandler creates a todo item from the request body.
func NewCreateTodoHandler(log *slog.Logger, svc *todo.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in todoIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, map[string]string{"detail": "invalid json"}, http.StatusBadRequest)
			return
		}

		input, fieldErrs := in.toInput()
		if fieldErrs != nil {
			writeErr(w, log, fieldErrs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		item, err := svc.Create(ctx, input)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, item, http.StatusCreated)
	}
}

// NewGetTodoHandler returns a single todo item by ID.
func NewGetTodoHandler(log *slog.Logger, svc *todo.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		item, err := svc.Get(ctx, r.PathValue("id"))
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, item, http.StatusOK)
	}
}

// NewUpdateTodoHandler replaces a todo item's writable fields from the
// request body.
func NewUpdateTodoHandler(log *slog.Logger, svc *todo.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in todoIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, map[string]string{"detail": "invalid json"}, http.StatusBadRequest)
			return
		}

		input, fieldErrs := in.toInput()
		if fieldErrs != nil {
			writeErr(w, log, fieldErrs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		item, err := svc.Update(ctx, r.PathValue("id"), input)
		if err != nil {
			writeErr(w, log, err)
			return
		}
		writeJSON(w, item, http.StatusOK)
	}
}

// NewDeleteTodoHandler removes a todo item by ID.
func NewDeleteTodoHandler(log *slog.Logger, svc *todo.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.Delete(ctx, r.PathValue("id")); err != nil {
			writeErr(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
