// Package storage provides file storage backends for document uploads.
package storage

import (
	"context"
	"fmt"
	"io"

	infraconfig "github.com/coop-erp/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// FileStorage abstracts where uploaded document files live. Keys are
// slash-separated relative paths; the database only ever stores the key.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// New builds the storage backend selected in configuration
func New(cfg *infraconfig.StorageConfig, logger *zap.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case "s3":
		return NewS3Storage(cfg, logger)
	case "local":
		return NewLocalStorage(cfg.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
