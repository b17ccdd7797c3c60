package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates a disk-backed implementation of PhotoStorage. Files are
// written under dir and served at baseURL + "/uploads/<folder>/<name>". The stored
// name is a fresh UUID so uploads never collide.
func NewLocalStorage(dir, baseURL string) (PhotoStorage, error) {
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &localStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *localStorage) UploadPhoto(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))

	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", dir, err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + path.Join("/uploads", folder, name), nil
}

func (s *localStorage) DeletePhoto(ctx context.Context, fileURL string) error {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL %s: %w", fileURL, err)
	}

	rel := strings.TrimPrefix(u.Path, "/uploads/")
	if rel == u.Path || rel == "" {
		return fmt.Errorf("URL does not point at the upload directory: %s", fileURL)
	}

	// Reject traversal out of the upload directory.
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid upload path: %s", rel)
	}

	if err := os.Remove(filepath.Join(s.dir, rel)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
