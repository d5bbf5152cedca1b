package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

func TestFileCache_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	c := NewFileCache(path)

	u := &domainauth.User{ID: "u-1", Email: "op@example.com", FirstName: "Pat"}
	require.NoError(t, c.Save(u))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestFileCache_MissingFile(t *testing.T) {
	c := NewFileCache(filepath.Join(t.TempDir(), "missing.json"))

	u, err := c.Load()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFileCache_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	c := NewFileCache(path)
	u, err := c.Load()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFileCache_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	c := NewFileCache(path)

	require.NoError(t, c.Save(&domainauth.User{ID: "u-1"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileCache_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	c := NewFileCache(path)
	require.NoError(t, c.Save(&domainauth.User{ID: "u-1"}))

	require.NoError(t, c.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an absent cache is not an error.
	assert.NoError(t, c.Clear())
}
