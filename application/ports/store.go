// Package ports defines the interfaces the application layer depends on.
// Concrete implementations live in the infrastructure layer.
package ports

import (
	"context"

	"todo-backend/domain/todo"
)

// TodoStore is the narrow contract over the key-value table that holds todo
// records, keyed by the record ID.
type TodoStore interface {
	// Get returns the record with the given ID, or (nil, nil) if it does
	// not exist. Absence is not an error.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Put upserts the record by its ID.
	Put(ctx context.Context, t *todo.Todo) error

	// ScanAll reads every record in the table. A fresh scan is issued per
	// call; an empty table yields an empty slice, never nil.
	ScanAll(ctx context.Context) ([]todo.Todo, error)

	// DeleteByID removes the record if present and reports whether it
	// existed before the call.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
