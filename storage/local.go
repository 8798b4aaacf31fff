package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps artwork files on the local filesystem under a base
// directory. Used in development; production runs against S3.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Delete(_ context.Context, ref string) error {
	path := filepath.Join(s.dir, filepath.Clean("/"+ref))
	if !strings.HasPrefix(path, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return fmt.Errorf("artwork ref %q escapes storage dir", ref)
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove artwork file: %w", err)
	}
	return nil
}
