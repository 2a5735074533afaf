// Package todos implements the domain operations over the todo store.
package todos

import (
	"context"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	appErrors "todo-backend/pkg/errors"

	"go.uber.org/zap"
)

// Repository wraps the TodoStore with the four domain operations. It owns ID
// generation and the completed-flag defaulting rule. A Repository is
// immutable after construction and safe for concurrent use.
type Repository struct {
	store  ports.TodoStore
	logger *zap.Logger
}

// NewRepository creates a new Repository.
func NewRepository(store ports.TodoStore, logger *zap.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Create generates a fresh ID, forces Completed to false, persists the
// record and returns it. The caller supplies only the title.
func (r *Repository) Create(ctx context.Context, title string) (*todo.Todo, error) {
	t := todo.New(title)

	if err := r.store.Put(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError("create todo", err)
	}

	r.logger.Info("Created todo",
		zap.String("todoID", t.ID),
	)

	return t, nil
}

// ListAll reads every record currently in the store. The result is unordered
// and possibly empty; an empty collection is not an error.
func (r *Repository) ListAll(ctx context.Context) ([]todo.Todo, error) {
	items, err := r.store.ScanAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list todos", err)
	}
	return items, nil
}

// MarkComplete looks up the record, sets Completed to true and persists the
// update. It returns (nil, nil) when the ID is unknown.
//
// This is a non-atomic read-modify-write: two concurrent calls on the same
// ID both read Completed=false and both write Completed=true. The target
// state is idempotent, so the race is accepted.
func (r *Repository) MarkComplete(ctx context.Context, id string) (*todo.Todo, error) {
	t, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, appErrors.NewDatabaseError("get todo", err)
	}
	if t == nil {
		return nil, nil
	}

	t.MarkComplete()

	if err := r.store.Put(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError("update todo", err)
	}

	r.logger.Info("Marked todo complete",
		zap.String("todoID", t.ID),
	)

	return t, nil
}

// Delete removes the record with the given ID. It returns true if the record
// existed and was removed, false (not an error) if it did not exist.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := r.store.DeleteByID(ctx, id)
	if err != nil {
		return false, appErrors.NewDatabaseError("delete todo", err)
	}

	if existed {
		r.logger.Info("Deleted todo",
			zap.String("todoID", id),
		)
	}

	return existed, nil
}
