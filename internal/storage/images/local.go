package images

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"marketplace-bff/internal/storage"
)

// LocalStore implements storage.ImageStore on the local filesystem
type LocalStore struct {
	basePath string
	baseURL  string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

var _ storage.ImageStore = (*LocalStore)(nil)

// Put writes data under name and returns its URL.
func (s *LocalStore) Put(ctx context.Context, name, contentType string, data io.Reader) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
