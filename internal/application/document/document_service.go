package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/coop-erp/backend/internal/domain/document"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/coop-erp/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles document uploads, versions and metadata. File content goes
// to the configured storage backend; metadata goes to the database.
type Service struct {
	db      *persistence.Database
	storage storage.FileStorage
	logger  *zap.Logger
}

// NewService creates a new document Service
func NewService(db *persistence.Database, store storage.FileStorage, logger *zap.Logger) *Service {
	return &Service{db: db, storage: store, logger: logger}
}

// UploadInput carries the metadata accompanying an uploaded file
type UploadInput struct {
	Name              string     `json:"name"`
	DocumentType      string     `json:"document_type"`
	RelatedEntityType string     `json:"related_entity_type"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id"`
	Description       string     `json:"description"`
	Tags              string     `json:"tags"`
	ExpiryDate        *time.Time `json:"expiry_date"`
}

// UpdateDocumentInput carries a partial metadata update
type UpdateDocumentInput struct {
	Name              *string    `json:"name"`
	DocumentType      *string    `json:"document_type"`
	RelatedEntityType *string    `json:"related_entity_type"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id"`
	Description       *string    `json:"description"`
	Tags              *string    `json:"tags"`
	ExpiryDate        *time.Time `json:"expiry_date"`
}

// Upload stores the file content and registers the document. The storage key
// is derived from a fresh UUID so uploads never collide.
func (s *Service) Upload(ctx context.Context, fileName, contentType string, size int64, content io.Reader, input UploadInput) (*document.Document, error) {
	name := input.Name
	if name == "" {
		name = fileName
	}
	key := storageKey(uuid.New(), fileName)
	if err := s.storage.Save(ctx, key, content, contentType); err != nil {
		return nil, err
	}

	doc, err := document.NewDocument(name, key, contentType, input.DocumentType, size)
	if err != nil {
		return nil, err
	}
	doc.RelatedEntityType = input.RelatedEntityType
	doc.RelatedEntityID = input.RelatedEntityID
	doc.Description = input.Description
	doc.Tags = input.Tags
	doc.ExpiryDate = input.ExpiryDate

	if err := persistence.NewGormDocumentRepository(s.db.DB).Save(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to clean up stored file after save error",
				zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("key", key),
		zap.Int64("size", size))
	return doc, nil
}

// UploadVersion stores a new revision of an existing document
func (s *Service) UploadVersion(ctx context.Context, id uuid.UUID, fileName string, size int64, content io.Reader, notes string) (*document.DocumentVersion, error) {
	repo := persistence.NewGormDocumentRepository(s.db.DB)
	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storageKey(uuid.New(), fileName)
	if err := s.storage.Save(ctx, key, content, doc.ContentType); err != nil {
		return nil, err
	}

	version, err := doc.AddVersion(key, size, notes)
	if err != nil {
		return nil, err
	}
	doc.FilePath = key
	doc.FileSize = size

	if err := repo.Save(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to clean up stored file after save error",
				zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	return version, nil
}

// Get fetches a document's metadata with its versions
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	return persistence.NewGormDocumentRepository(s.db.DB).FindByID(ctx, id)
}

// List returns a page of documents
func (s *Service) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[document.Document], error) {
	repo := persistence.NewGormDocumentRepository(s.db.DB)
	docs, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(docs, total, filter.Page, filter.Limit())
	return &page, nil
}

// Download opens the document's current file content. The caller owns the
// returned reader and must close it.
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*document.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Open(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return doc, rc, nil
}

// Update applies a partial metadata update
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateDocumentInput) (*document.Document, error) {
	repo := persistence.NewGormDocumentRepository(s.db.DB)
	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Document name cannot be empty")
		}
		doc.Name = *input.Name
	}
	if input.DocumentType != nil {
		doc.DocumentType = *input.DocumentType
	}
	if input.RelatedEntityType != nil {
		doc.RelatedEntityType = *input.RelatedEntityType
	}
	if input.RelatedEntityID != nil {
		doc.RelatedEntityID = input.RelatedEntityID
	}
	if input.Description != nil {
		doc.Description = *input.Description
	}
	if input.Tags != nil {
		doc.Tags = *input.Tags
	}
	if input.ExpiryDate != nil {
		doc.ExpiryDate = input.ExpiryDate
	}
	doc.Touch()

	if err := repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Archive marks a document as archived; the stored file stays in place
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	repo := persistence.NewGormDocumentRepository(s.db.DB)
	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := doc.Archive(); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the document's metadata and all stored file revisions
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	repo := persistence.NewGormDocumentRepository(s.db.DB)
	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	keys := map[string]struct{}{doc.FilePath: {}}
	for _, v := range doc.Versions {
		keys[v.FilePath] = struct{}{}
	}
	for key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete stored file",
				zap.String("document_id", id.String()),
				zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

func storageKey(id uuid.UUID, fileName string) string {
	return fmt.Sprintf("documents/%s%s", id.String(), filepath.Ext(fileName))
}
