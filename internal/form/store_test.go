package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, s.Set("k", "v1"))
	require.NoError(t, s.Set("k", "v2"))
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, s.Remove("k"))
	_, err = s.Get("k")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, s.Set("draft", `{"version":1}`))
	got, err := s.Get("draft")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, got)

	require.NoError(t, s.Remove("draft"))
	require.NoError(t, s.Remove("draft"), "removing an absent key is not an error")
	_, err = s.Get("draft")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
