// Package rest wires the HTTP routes to the handlers.
package rest

import (
	"net/http"

	"todo-backend/application/todos"
	"todo-backend/interfaces/http/rest/handlers"
	"todo-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	repo   *todos.Repository
	logger *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(repo *todos.Repository, logger *zap.Logger) *Router {
	return &Router{
		repo:   repo,
		logger: logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Todo endpoints. Complete and Delete address the record through the
	// id query parameter, not a path parameter.
	router.Route("/todos", func(r chi.Router) {
		todoHandler := handlers.NewTodoHandler(rt.repo, rt.logger)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/", todoHandler.ListTodos)
		r.Put("/", todoHandler.CompleteTodo)
		r.Delete("/", todoHandler.DeleteTodo)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
