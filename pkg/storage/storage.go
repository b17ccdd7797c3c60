package storage

import (
	"context"
	"io"
)

// PhotoStorage defines the contract for photo storage providers.
type PhotoStorage interface {
	// UploadPhoto stores the photo from reader and returns the public URL.
	// folder is a logical folder in storage (e.g. "post-events").
	UploadPhoto(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeletePhoto removes a previously stored photo using its URL.
	DeletePhoto(ctx context.Context, fileURL string) error
}
