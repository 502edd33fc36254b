package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes uploads to a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save validates and writes the upload, returning its relative path.
func (s *DiskStore) Save(ctx context.Context, field, filename string, size int64, r io.Reader) (string, error) {
	contentType, header, err := checkUpload(size, r)
	if err != nil {
		return "", err
	}

	name := objectName(field, filename, contentType)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(header); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if _, err := io.Copy(f, io.LimitReader(r, MaxFileSize)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
