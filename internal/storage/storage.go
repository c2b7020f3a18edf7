package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the file.
	GetURL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string // local directory for uploads
	BaseURL  string // public URL prefix
}
