package trade

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/domain/trade"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PurchaseService handles purchase orders, supplier invoices and outgoing
// payments. It mirrors SalesService on the supplier side.
type PurchaseService struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(db *persistence.Database, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{db: db, logger: logger}
}

// CreatePurchaseOrderInput carries the fields for creating a purchase order
type CreatePurchaseOrderInput struct {
	SupplierID   uuid.UUID        `json:"supplier_id" binding:"required"`
	OrderDate    *time.Time       `json:"order_date"`
	ExpectedDate *time.Time       `json:"expected_date"`
	TaxAmount    decimal.Decimal  `json:"tax_amount"`
	Notes        string           `json:"notes"`
	Items        []OrderItemInput `json:"items"`
}

// UpdatePurchaseOrderInput carries a partial update. A non-nil Items slice
// replaces the full item list and recomputes the order totals.
type UpdatePurchaseOrderInput struct {
	OrderDate    *time.Time       `json:"order_date"`
	ExpectedDate *time.Time       `json:"expected_date"`
	Status       *string          `json:"status"`
	TaxAmount    *decimal.Decimal `json:"tax_amount"`
	Notes        *string          `json:"notes"`
	Items        []OrderItemInput `json:"items"`
}

// CreateOrder creates a purchase order with its items and computed totals
func (s *PurchaseService) CreateOrder(ctx context.Context, input CreatePurchaseOrderInput) (*trade.PurchaseOrder, error) {
	repo := persistence.NewGormPurchaseOrderRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixPurchaseOrder, func(n string) (bool, error) {
		return repo.OrderNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	order, err := trade.NewPurchaseOrder(number, input.SupplierID, orderDate, input.TaxAmount)
	if err != nil {
		return nil, err
	}
	order.ExpectedDate = input.ExpectedDate
	order.Notes = input.Notes

	for _, it := range input.Items {
		item, err := trade.NewPurchaseOrderItem(order.ID, it.Description, it.Quantity, it.UnitPrice)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}
	order.RecalcTotals()

	if err := repo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("purchase order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber))
	return order, nil
}

// GetOrder fetches a purchase order with its items and invoices
func (s *PurchaseService) GetOrder(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	return persistence.NewGormPurchaseOrderRepository(s.db.DB).FindByID(ctx, id)
}

// ListOrders returns a page of purchase orders
func (s *PurchaseService) ListOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.PurchaseOrder], error) {
	repo := persistence.NewGormPurchaseOrderRepository(s.db.DB)
	orders, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(orders, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateOrder applies a partial update; replacing items recomputes totals
func (s *PurchaseService) UpdateOrder(ctx context.Context, id uuid.UUID, input UpdatePurchaseOrderInput) (*trade.PurchaseOrder, error) {
	var updated *trade.PurchaseOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := persistence.NewGormPurchaseOrderRepository(tx)
		order, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.OrderDate != nil {
			order.OrderDate = *input.OrderDate
		}
		if input.ExpectedDate != nil {
			order.ExpectedDate = input.ExpectedDate
		}
		if input.Status != nil {
			status := trade.OrderStatus(*input.Status)
			if !status.IsValid() {
				return shared.NewDomainError("VALIDATION_FAILED", "Order status is not valid")
			}
			order.Status = status
		}
		if input.TaxAmount != nil {
			if input.TaxAmount.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Tax amount cannot be negative")
			}
			order.TaxAmount = *input.TaxAmount
		}
		if input.Notes != nil {
			order.Notes = *input.Notes
		}
		if input.Items != nil {
			if err := tx.Where("order_id = ?", order.ID).Delete(&trade.PurchaseOrderItem{}).Error; err != nil {
				return err
			}
			order.Items = nil
			for _, it := range input.Items {
				item, err := trade.NewPurchaseOrderItem(order.ID, it.Description, it.Quantity, it.UnitPrice)
				if err != nil {
					return err
				}
				order.Items = append(order.Items, *item)
			}
		}
		order.RecalcTotals()

		if err := repo.Save(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder removes a purchase order with its items and invoices
func (s *PurchaseService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormPurchaseOrderRepository(s.db.DB).Delete(ctx, id)
}

// CreateInvoice records a supplier invoice against a purchase order and
// re-derives the order's payment status
func (s *PurchaseService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*trade.SupplierInvoice, error) {
	var created *trade.SupplierInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := persistence.NewGormPurchaseOrderRepository(tx)
		invoiceRepo := persistence.NewGormSupplierInvoiceRepository(tx)

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return err
		}

		number, err := shared.GenerateDocumentNumber(shared.PrefixSupplierInvoice, func(n string) (bool, error) {
			return invoiceRepo.InvoiceNumberExists(ctx, n)
		})
		if err != nil {
			return err
		}

		invoiceDate := time.Now()
		if input.InvoiceDate != nil {
			invoiceDate = *input.InvoiceDate
		}
		inv, err := trade.NewSupplierInvoice(number, order.ID, invoiceDate, input.DueDate, input.Amount)
		if err != nil {
			return err
		}
		inv.Notes = input.Notes

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}

		order.Invoices = append(order.Invoices, *inv)
		order.RecalcPaymentStatus()
		if err := orderRepo.Save(ctx, order); err != nil {
			return err
		}
		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetInvoice fetches a supplier invoice with its payments
func (s *PurchaseService) GetInvoice(ctx context.Context, id uuid.UUID) (*trade.SupplierInvoice, error) {
	return persistence.NewGormSupplierInvoiceRepository(s.db.DB).FindByID(ctx, id)
}

// ListInvoices returns a page of supplier invoices
func (s *PurchaseService) ListInvoices(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.SupplierInvoice], error) {
	repo := persistence.NewGormSupplierInvoiceRepository(s.db.DB)
	invoices, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(invoices, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateInvoice applies a partial update and re-derives statuses up the chain
func (s *PurchaseService) UpdateInvoice(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*trade.SupplierInvoice, error) {
	var updated *trade.SupplierInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSupplierInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.InvoiceDate != nil {
			inv.InvoiceDate = *input.InvoiceDate
		}
		if input.DueDate != nil {
			inv.DueDate = input.DueDate
		}
		if input.Notes != nil {
			inv.Notes = *input.Notes
		}
		if input.Amount != nil {
			if input.Amount.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("VALIDATION_FAILED", "Invoice amount must be positive")
			}
			inv.Amount = *input.Amount
		}
		inv.RecalcPaymentStatus()

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}
		if err := s.propagateToOrder(ctx, tx, inv.OrderID); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteInvoice removes a supplier invoice and re-derives the order's status
func (s *PurchaseService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSupplierInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := invoiceRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.propagateToOrder(ctx, tx, inv.OrderID)
	})
}

// CreatePayment records an outgoing payment against a supplier invoice and
// re-derives the invoice and order payment statuses in one transaction
func (s *PurchaseService) CreatePayment(ctx context.Context, invoiceID uuid.UUID, input PaymentInput) (*trade.SupplierInvoicePayment, error) {
	var created *trade.SupplierInvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSupplierInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}

		date := time.Now()
		if input.PaymentDate != nil {
			date = *input.PaymentDate
		}
		p, err := inv.AddPayment(input.Amount, date, input.PaymentMethod, input.Reference)
		if err != nil {
			return err
		}

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}
		if err := s.propagateToOrder(ctx, tx, inv.OrderID); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("supplier invoice payment recorded",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("amount", input.Amount.String()))
	return created, nil
}

// GetPayment fetches a single outgoing payment
func (s *PurchaseService) GetPayment(ctx context.Context, id uuid.UUID) (*trade.SupplierInvoicePayment, error) {
	return persistence.NewGormSupplierInvoicePaymentRepository(s.db.DB).FindByID(ctx, id)
}

// ListPayments returns a supplier invoice's payments
func (s *PurchaseService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]trade.SupplierInvoicePayment, error) {
	if _, err := persistence.NewGormSupplierInvoiceRepository(s.db.DB).FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return persistence.NewGormSupplierInvoicePaymentRepository(s.db.DB).FindByInvoice(ctx, invoiceID)
}

// UpdatePayment applies a partial update and re-derives the invoice and order
// payment statuses in the same transaction
func (s *PurchaseService) UpdatePayment(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*trade.SupplierInvoicePayment, error) {
	var updated *trade.SupplierInvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormSupplierInvoicePaymentRepository(tx)
		p, err := paymentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Amount != nil {
			if input.Amount.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("VALIDATION_FAILED", "Payment amount must be positive")
			}
			p.Amount = *input.Amount
		}
		if input.PaymentDate != nil {
			p.PaymentDate = *input.PaymentDate
		}
		if input.PaymentMethod != nil {
			p.PaymentMethod = *input.PaymentMethod
		}
		if input.Reference != nil {
			p.Reference = *input.Reference
		}

		if err := paymentRepo.Save(ctx, p); err != nil {
			return err
		}
		if err := s.rederiveInvoice(ctx, tx, p.InvoiceID); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePayment removes an outgoing payment and re-derives the invoice and
// order payment statuses
func (s *PurchaseService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormSupplierInvoicePaymentRepository(tx)
		p, err := paymentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := paymentRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.rederiveInvoice(ctx, tx, p.InvoiceID)
	})
}

// rederiveInvoice re-reads the invoice with its remaining payments inside the
// transaction, re-derives its status and rolls the order status up
func (s *PurchaseService) rederiveInvoice(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID) error {
	invoiceRepo := persistence.NewGormSupplierInvoiceRepository(tx)
	inv, err := invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	inv.RecalcPaymentStatus()
	if err := invoiceRepo.Save(ctx, inv); err != nil {
		return err
	}
	return s.propagateToOrder(ctx, tx, inv.OrderID)
}

func (s *PurchaseService) propagateToOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error {
	orderRepo := persistence.NewGormPurchaseOrderRepository(tx)
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	order.RecalcPaymentStatus()
	return orderRepo.Save(ctx, order)
}
