package todo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	created := New("Buy milk")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
}

func TestNew_DistinctIDs(t *testing.T) {
	first := New("same title")
	second := New("same title")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMarkComplete(t *testing.T) {
	created := New("task")
	created.MarkComplete()

	assert.True(t, created.Completed)

	// No inverse transition; a second call is a no-op.
	created.MarkComplete()
	assert.True(t, created.Completed)
}

func TestJSONRoundTrip(t *testing.T) {
	original := Todo{
		ID:        "7b8a1c9e-1111-2222-3333-444455556666",
		Title:     "Buy milk",
		Completed: false,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	// completed must serialize as a JSON boolean, and false must not be
	// dropped from the object.
	assert.JSONEq(t,
		`{"id":"7b8a1c9e-1111-2222-3333-444455556666","title":"Buy milk","completed":false}`,
		string(data),
	)

	var decoded Todo
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
