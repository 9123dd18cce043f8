package repository

import (
	"context"
	"io"
)

// FileRepository stores uploaded binary files by name.
type FileRepository interface {
	// Open returns a reader for the stored file and its size.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)

	// Save writes r under name, replacing nothing: an existing name is an error.
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
}
