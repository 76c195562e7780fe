package document

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for document persistence.
// FindByID loads the document with its versions.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Document, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}
