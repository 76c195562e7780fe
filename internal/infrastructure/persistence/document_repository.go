package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/document"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements document.Repository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID loads the document with its versions
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	var doc document.Document
	err := r.db.WithContext(ctx).Preload("Versions").First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll finds all documents matching the filter
func (r *GormDocumentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.Document, error) {
	var docs []document.Document
	query := applyFilter(r.db.WithContext(ctx).Model(&document.Document{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Count counts documents matching the filter
func (r *GormDocumentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&document.Document{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates a document together with its versions
func (r *GormDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// Delete removes a document and its versions
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&document.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
