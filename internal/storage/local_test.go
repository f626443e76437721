package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "watch")

	store, err := NewLocal(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSave(t *testing.T) {
	newStore := func(t *testing.T) *Local {
		t.Helper()
		store, err := NewLocal(t.TempDir())
		require.NoError(t, err)
		return store
	}

	t.Run("writes the content", func(t *testing.T) {
		store := newStore(t)

		name, err := store.Save("movie.torrent", strings.NewReader("payload"))

		require.NoError(t, err)
		assert.Equal(t, "movie.torrent", name)
		data, err := os.ReadFile(filepath.Join(store.Dir(), name))
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("flattens path traversal", func(t *testing.T) {
		store := newStore(t)

		name, err := store.Save("../../etc/passwd", strings.NewReader("x"))

		require.NoError(t, err)
		assert.Equal(t, "passwd", name)
		assert.FileExists(t, filepath.Join(store.Dir(), "passwd"))
	})

	t.Run("never overwrites an existing file", func(t *testing.T) {
		store := newStore(t)

		first, err := store.Save("movie.torrent", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := store.Save("movie.torrent", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, strings.HasPrefix(second, "movie-"))
		assert.True(t, strings.HasSuffix(second, ".torrent"))

		data, err := os.ReadFile(filepath.Join(store.Dir(), first))
		require.NoError(t, err)
		assert.Equal(t, "one", string(data))
		data, err = os.ReadFile(filepath.Join(store.Dir(), second))
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))
	})

	t.Run("names a nameless file", func(t *testing.T) {
		store := newStore(t)

		name, err := store.Save("", strings.NewReader("x"))

		require.NoError(t, err)
		assert.NotEmpty(t, name)
		assert.FileExists(t, filepath.Join(store.Dir(), name))
	})
}
