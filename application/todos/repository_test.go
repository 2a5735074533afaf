package todos

import (
	"context"
	"testing"

	"todo-backend/domain/todo"
	"todo-backend/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepository() *Repository {
	return NewRepository(memory.NewTodoStore(), zap.NewNop())
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	created, err := repo.Create(ctx, "Buy milk")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	// Two creates with identical titles yield different ids.
	second, err := repo.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestRepository_ListAll_Empty(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	todoList, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, todoList)
	assert.Empty(t, todoList)
}

func TestRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	a, err := repo.Create(ctx, "A")
	require.NoError(t, err)
	b, err := repo.Create(ctx, "B")
	require.NoError(t, err)

	todoList, err := repo.ListAll(ctx)
	require.NoError(t, err)

	// Order is not guaranteed; compare as a set.
	assert.ElementsMatch(t, []todo.Todo{*a, *b}, todoList)
}

func TestRepository_MarkComplete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	created, err := repo.Create(ctx, "task")
	require.NoError(t, err)

	updated, err := repo.MarkComplete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.True(t, updated.Completed)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Title, updated.Title)

	// Idempotent on repeat.
	again, err := repo.MarkComplete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, updated, again)
}

func TestRepository_MarkComplete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	updated, err := repo.MarkComplete(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	created, err := repo.Create(ctx, "task")
	require.NoError(t, err)

	existed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	todoList, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todoList)

	// Deleting again reports absence, not an error.
	existed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}
