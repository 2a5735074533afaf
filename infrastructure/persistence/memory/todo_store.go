// Package memory provides an in-memory implementation of the todo store,
// used by the local server and by tests.
package memory

import (
	"context"
	"sync"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
)

// TodoStore is a mutex-guarded map implementation of ports.TodoStore.
type TodoStore struct {
	mu    sync.RWMutex
	items map[string]todo.Todo
}

// NewTodoStore creates a new in-memory todo store.
func NewTodoStore() *TodoStore {
	return &TodoStore{
		items: make(map[string]todo.Todo),
	}
}

var _ ports.TodoStore = (*TodoStore)(nil)

// Get returns the record with the given id, or (nil, nil) if absent.
func (s *TodoStore) Get(ctx context.Context, id string) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.items[id]
	if !exists {
		return nil, nil
	}
	return &t, nil
}

// Put upserts the record by its id.
func (s *TodoStore) Put(ctx context.Context, t *todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[t.ID] = *t
	return nil
}

// ScanAll returns every record, in map iteration order.
func (s *TodoStore) ScanAll(ctx context.Context) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todosList := make([]todo.Todo, 0, len(s.items))
	for _, t := range s.items {
		todosList = append(todosList, t)
	}
	return todosList, nil
}

// DeleteByID removes the record and reports whether it existed.
func (s *TodoStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.items[id]
	delete(s.items, id)
	return existed, nil
}
