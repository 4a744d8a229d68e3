// Package content resolves stored book PDFs on the local filesystem.
package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("content file not found")

type Store struct {
	root string
}

func NewStore(root string) *Store { return &Store{root: root} }

// Resolve maps a stored pdf path to an absolute path under the root.
// Paths escaping the root are rejected.
func (s *Store) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}
	// legacy records may already carry the uploads prefix
	name = strings.TrimPrefix(name, s.root+string(filepath.Separator))
	name = strings.TrimPrefix(name, s.root+"/")

	p := filepath.Join(s.root, filepath.Clean("/"+name))
	if !strings.HasPrefix(p, filepath.Clean(s.root)+string(filepath.Separator)) {
		return "", ErrNotFound
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return p, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(name string) error {
	p, err := s.Resolve(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return os.Remove(p)
}
