// Package todo contains the todo record entity.
package todo

import (
	"github.com/google/uuid"
)

// Todo represents a single todo record. The ID is assigned at creation time
// and never changes; Completed is the only field that is mutable afterwards,
// and it only moves from false to true.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// New creates a todo with a freshly generated ID and Completed set to false.
// Collision probability of the random UUID is treated as negligible; the
// store is not consulted.
func New(title string) *Todo {
	return &Todo{
		ID:        uuid.New().String(),
		Title:     title,
		Completed: false,
	}
}

// MarkComplete flips the completed flag. There is no inverse operation.
func (t *Todo) MarkComplete() {
	t.Completed = true
}
