// Package handlers contains the HTTP request handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	"todo-backend/application/todos"

	"go.uber.org/zap"
)

// TodoHandler handles todo-related HTTP requests. It is constructed once at
// process start and reused for every request; it holds no per-request state.
type TodoHandler struct {
	repo   *todos.Repository
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(repo *todos.Repository, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateTodoRequest represents the request body for creating a todo. Any
// completed flag supplied by the caller is ignored; new todos always start
// incomplete.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.repo.Create(r.Context(), req.Title)
	if err != nil {
		h.logger.Error("Failed to create todo", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	h.respondJSON(w, http.StatusCreated, created)
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todoList, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list todos", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve todos")
		return
	}

	h.respondJSON(w, http.StatusOK, todoList)
}

// CompleteTodo handles PUT /todos?id=<id>
func (h *TodoHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "'id' query parameter is missing")
		return
	}

	updated, err := h.repo.MarkComplete(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to update todo",
			zap.String("todoID", id),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}
	if updated == nil {
		h.respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

// DeleteTodo handles DELETE /todos?id=<id>
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "'id' query parameter is missing")
		return
	}

	existed, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to delete todo",
			zap.String("todoID", id),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}
	if !existed {
		h.respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *TodoHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *TodoHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{
		"error": message,
	})
}
