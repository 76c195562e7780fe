package partner

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/partner"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierService handles supplier use cases
type SupplierService struct {
	repo   partner.SupplierRepository
	logger *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(repo partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{repo: repo, logger: logger}
}

// CreateSupplierInput carries the fields for creating a supplier
type CreateSupplierInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"payment_terms"`
	TaxID         string `json:"tax_id"`
	BankAccount   string `json:"bank_account"`
}

// UpdateSupplierInput carries a partial update; nil fields are left unchanged
type UpdateSupplierInput struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms"`
	TaxID         *string `json:"tax_id"`
	BankAccount   *string `json:"bank_account"`
	Status        *string `json:"status"`
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, input CreateSupplierInput) (*partner.Supplier, error) {
	sup, err := partner.NewSupplier(input.Name)
	if err != nil {
		return nil, err
	}
	sup.ContactPerson = input.ContactPerson
	sup.Email = input.Email
	sup.Phone = input.Phone
	sup.Address = input.Address
	sup.PaymentTerms = input.PaymentTerms
	sup.TaxID = input.TaxID
	sup.BankAccount = input.BankAccount

	if err := s.repo.Save(ctx, sup); err != nil {
		return nil, err
	}
	s.logger.Info("supplier created", zap.String("supplier_id", sup.ID.String()))
	return sup, nil
}

// Get fetches a supplier by ID
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of suppliers
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[partner.Supplier], error) {
	suppliers, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(suppliers, total, filter.Page, filter.Limit())
	return &page, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*partner.Supplier, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Supplier name cannot be empty")
		}
		sup.Name = *input.Name
	}
	if input.ContactPerson != nil {
		sup.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		sup.Email = *input.Email
	}
	if input.Phone != nil {
		sup.Phone = *input.Phone
	}
	if input.Address != nil {
		sup.Address = *input.Address
	}
	if input.PaymentTerms != nil {
		sup.PaymentTerms = *input.PaymentTerms
	}
	if input.TaxID != nil {
		sup.TaxID = *input.TaxID
	}
	if input.BankAccount != nil {
		sup.BankAccount = *input.BankAccount
	}
	if input.Status != nil {
		status := partner.PartnerStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Supplier status is not valid")
		}
		sup.Status = status
	}
	sup.Touch()

	if err := s.repo.Save(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
