package avatar

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Store is the blob store for avatar images, addressed by file name under a
// single path-like prefix (user-uploads/avatar/<name>).
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Delete(ctx context.Context, name string) error
}

type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	if root == "" {
		root = filepath.Join("user-uploads", "avatar")
	}
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(_ context.Context, name string, r io.Reader) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (s *DiskStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.root, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
