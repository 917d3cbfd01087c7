// Package themefile implements the durable theme preference as a single file
// holding the literal preference string.
package themefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/perkhub/dashboard/internal/app/storage"
)

// Store persists the theme preference at a fixed path.
type Store struct {
	path string
}

var _ storage.PreferenceStore = (*Store)(nil)

// New creates a file-backed preference store. The file is created on first
// Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored value. A missing file is not an error; it reports
// present=false so the caller can apply its default.
func (s *Store) Load() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read theme preference: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Save writes the value, creating parent directories as needed.
func (s *Store) Save(value string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme preference dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(value+"\n"), 0o644); err != nil {
		return fmt.Errorf("write theme preference: %w", err)
	}
	return nil
}
