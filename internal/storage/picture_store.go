package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskPictureStore stores uploaded hospital pictures on the local filesystem.
// Stored names carry a random suffix so re-uploading a picture for the same
// hospital never overwrites the file a client may still be fetching.
type DiskPictureStore struct {
	dir string
}

func NewDiskPictureStore(dir string) (*DiskPictureStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskPictureStore{dir: dir}, nil
}

// Save writes the picture to disk and returns the stored path
func (s *DiskPictureStore) Save(hospitalID uint, originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s%s", hospitalID, uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create picture file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write picture file: %w", err)
	}
	return path, nil
}
