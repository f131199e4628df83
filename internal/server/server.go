// Package server exposes the todo service over HTTP. It owns routing, basic
// authentication, JSON encoding, and the mapping from core errors to status
// codes; all business rules live in the todo package.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rishbot91/todo-project/internal/todo"
)

// Credentials holds the single basic-auth principal accepted by the API.
type Credentials struct {
	Username string
	Password string
}

// Register mounts all todo routes on mux. Every route requires basic
// authentication; the service itself is principal-agnostic.
func Register(
	mux *http.ServeMux,
	log *slog.Logger,
	svc *todo.Service,
	creds Credentials,
	timeout time.Duration,
) {
	auth := func(h http.Handler) http.Handler {
		return requireBasicAuth(h, creds, log)
	}

	mux.Handle("GET /todos/{$}", auth(NewListTodosHandler(log, svc, timeout)))
	mux.Handle("POST /todos/{$}", auth(NewCreateTodoHandler(log, svc, timeout)))
	mux.Handle("GET /todos/{id}/{$}", auth(NewGetTodoHandler(log, svc, timeout)))
	mux.Handle("PUT /todos/{id}/{$}", auth(NewUpdateTodoHandler(log, svc, timeout)))
	mux.Handle("DELETE /todos/{id}/{$}", auth(NewDeleteTodoHandler(log, svc, timeout)))
}
