package partner

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/partner"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerService handles customer use cases
type CustomerService struct {
	repo   partner.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// CreateCustomerInput carries the fields for creating a customer
type CreateCustomerInput struct {
	Name          string          `json:"name" binding:"required"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	PaymentTerms  string          `json:"payment_terms"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	TaxID         string          `json:"tax_id"`
}

// UpdateCustomerInput carries a partial update; nil fields are left unchanged
type UpdateCustomerInput struct {
	Name          *string          `json:"name"`
	ContactPerson *string          `json:"contact_person"`
	Email         *string          `json:"email"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	PaymentTerms  *string          `json:"payment_terms"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
	TaxID         *string          `json:"tax_id"`
	Status        *string          `json:"status"`
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*partner.Customer, error) {
	c, err := partner.NewCustomer(input.Name)
	if err != nil {
		return nil, err
	}
	c.ContactPerson = input.ContactPerson
	c.Email = input.Email
	c.Phone = input.Phone
	c.Address = input.Address
	c.PaymentTerms = input.PaymentTerms
	c.TaxID = input.TaxID
	if !input.CreditLimit.IsZero() {
		if input.CreditLimit.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Credit limit cannot be negative")
		}
		c.CreditLimit = input.CreditLimit
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("customer created", zap.String("customer_id", c.ID.String()))
	return c, nil
}

// Get fetches a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of customers
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[partner.Customer], error) {
	customers, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(customers, total, filter.Page, filter.Limit())
	return &page, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*partner.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Customer name cannot be empty")
		}
		c.Name = *input.Name
	}
	if input.ContactPerson != nil {
		c.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Address != nil {
		c.Address = *input.Address
	}
	if input.PaymentTerms != nil {
		c.PaymentTerms = *input.PaymentTerms
	}
	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Credit limit cannot be negative")
		}
		c.CreditLimit = *input.CreditLimit
	}
	if input.TaxID != nil {
		c.TaxID = *input.TaxID
	}
	if input.Status != nil {
		status := partner.PartnerStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Customer status is not valid")
		}
		c.Status = status
	}
	c.Touch()

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
