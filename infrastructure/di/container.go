package di

import (
	"todo-backend/application/ports"
	"todo-backend/application/todos"
	"todo-backend/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Store      ports.TodoStore
	Repository *todos.Repository
}
