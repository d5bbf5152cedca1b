package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// FileCache persists the display user between runs. It deliberately stores
// only the user: authentication state must always be re-derived from the
// token, never trusted from disk.
type FileCache struct {
	path string
}

// persistedState is the on-disk shape. Versioned so future fields can be
// added without breaking old files.
type persistedState struct {
	Version int              `json:"version"`
	User    *domainauth.User `json:"user,omitempty"`
}

const persistedStateVersion = 1

// NewFileCache builds a FileCache at the given path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the persisted user. A missing file is not an error; it returns
// a nil user.
func (c *FileCache) Load() (*domainauth.User, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session cache: %w", err)
	}

	var st persistedState
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt cache is treated like an empty one; it only holds
		// display data.
		return nil, nil
	}
	return st.User, nil
}

// Save writes the display user to disk.
func (c *FileCache) Save(u *domainauth.User) error {
	st := persistedState{Version: persistedStateVersion, User: u}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session cache: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session cache dir: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write session cache: %w", err)
	}
	return nil
}

// Clear removes the persisted cache file.
func (c *FileCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session cache: %w", err)
	}
	return nil
}
