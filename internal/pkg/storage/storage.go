package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded photos and report artifacts live.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
