package filestore

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
)

type fileRepository struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewOsFileRepository stores files under dir on the local disk, creating it if needed.
func NewOsFileRepository(dir string, logger *zap.Logger) (repository.FileRepository, error) {
	base := afero.NewOsFs()
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create files directory: %w", err)
	}

	logger.Info("File storage ready", zap.String("dir", dir))
	return NewFileRepository(afero.NewBasePathFs(base, dir), logger), nil
}

// NewFileRepository uses fsys as the storage root.
func NewFileRepository(fsys afero.Fs, logger *zap.Logger) repository.FileRepository {
	return &fileRepository{fs: fsys, logger: logger}
}

func (r *fileRepository) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	f, err := r.fs.Open(clean(name))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, 0, errors.ErrFileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to open file", zap.String("name", name), zap.Error(err))
		return nil, 0, errors.ErrInternalServer
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		r.logger.Error("Failed to stat file", zap.String("name", name), zap.Error(err))
		return nil, 0, errors.ErrInternalServer
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, 0, errors.ErrFileNotFound
	}

	return f, info.Size(), nil
}

func (r *fileRepository) Save(ctx context.Context, name string, src io.Reader) (int64, error) {
	path := clean(name)

	f, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		r.logger.Error("Failed to create file", zap.String("name", name), zap.Error(err))
		return 0, errors.ErrInternalServer
	}

	written, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		_ = r.fs.Remove(path)
		r.logger.Error("Failed to write file", zap.String("name", name), zap.Error(err))
		return 0, errors.ErrInternalServer
	}

	r.logger.Info("File stored", zap.String("name", name), zap.Int64("size", written))
	return written, nil
}

// clean keeps only the base name so a caller-supplied name never leaves the storage root.
func clean(name string) string {
	return filepath.Base(filepath.Clean("/" + name))
}
