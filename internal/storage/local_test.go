package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveExistsDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "avatars/u1_123.png", strings.NewReader("payload"))
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "avatars/u1_123.png")
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := os.ReadFile(filepath.Join(s.BasePath(), "avatars", "u1_123.png"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	require.NoError(t, s.Delete(ctx, "avatars/u1_123.png"))

	exists, err = s.Exists(ctx, "avatars/u1_123.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is a no-op.
	assert.NoError(t, s.Delete(ctx, "avatars/never-there.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)
	assert.Equal(t, "/uploads/avatars/a.png", s.GetURL("avatars/a.png"))

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/a.png", bare.GetURL("avatars/a.png"))
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
