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

// SalesService handles sales orders, invoices and payments. Invoice and
// payment mutations re-derive the owning order's payment status in the same
// transaction as the child write.
type SalesService struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewSalesService creates a new SalesService
func NewSalesService(db *persistence.Database, logger *zap.Logger) *SalesService {
	return &SalesService{db: db, logger: logger}
}

// OrderItemInput is one line of an order
type OrderItemInput struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderInput carries the fields for creating an order
type CreateOrderInput struct {
	PartnerID uuid.UUID        `json:"partner_id" binding:"required"`
	OrderDate *time.Time       `json:"order_date"`
	TaxAmount decimal.Decimal  `json:"tax_amount"`
	Notes     string           `json:"notes"`
	Items     []OrderItemInput `json:"items"`
}

// UpdateOrderInput carries a partial update. A non-nil Items slice replaces
// the full item list and recomputes the order totals.
type UpdateOrderInput struct {
	OrderDate *time.Time       `json:"order_date"`
	Status    *string          `json:"status"`
	TaxAmount *decimal.Decimal `json:"tax_amount"`
	Notes     *string          `json:"notes"`
	Items     []OrderItemInput `json:"items"`
}

// CreateInvoiceInput carries the fields for invoicing an order
type CreateInvoiceInput struct {
	OrderID     uuid.UUID       `json:"order_id" binding:"required"`
	InvoiceDate *time.Time      `json:"invoice_date"`
	DueDate     *time.Time      `json:"due_date"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateInvoiceInput carries a partial invoice update. An amount change
// re-derives the invoice status against the payments already recorded.
type UpdateInvoiceInput struct {
	InvoiceDate *time.Time       `json:"invoice_date"`
	DueDate     *time.Time       `json:"due_date"`
	Amount      *decimal.Decimal `json:"amount"`
	Notes       *string          `json:"notes"`
}

// PaymentInput carries the fields for recording a payment
type PaymentInput struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   *time.Time      `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
}

// UpdatePaymentInput carries a partial payment update. An amount change
// re-derives the invoice and order payment statuses.
type UpdatePaymentInput struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time       `json:"payment_date"`
	PaymentMethod *string          `json:"payment_method"`
	Reference     *string          `json:"reference"`
}

// CreateOrder creates an order with its items and computed totals
func (s *SalesService) CreateOrder(ctx context.Context, input CreateOrderInput) (*trade.SalesOrder, error) {
	repo := persistence.NewGormSalesOrderRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixSalesOrder, func(n string) (bool, error) {
		return repo.OrderNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	order, err := trade.NewSalesOrder(number, input.PartnerID, orderDate, input.TaxAmount)
	if err != nil {
		return nil, err
	}
	order.Notes = input.Notes

	for _, it := range input.Items {
		item, err := trade.NewSalesOrderItem(order.ID, it.Description, it.Quantity, it.UnitPrice)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}
	order.RecalcTotals()

	if err := repo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("sales order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber))
	return order, nil
}

// GetOrder fetches an order with its items and invoices
func (s *SalesService) GetOrder(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	return persistence.NewGormSalesOrderRepository(s.db.DB).FindByID(ctx, id)
}

// ListOrders returns a page of orders
func (s *SalesService) ListOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.SalesOrder], error) {
	repo := persistence.NewGormSalesOrderRepository(s.db.DB)
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
func (s *SalesService) UpdateOrder(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*trade.SalesOrder, error) {
	var updated *trade.SalesOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := persistence.NewGormSalesOrderRepository(tx)
		order, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.OrderDate != nil {
			order.OrderDate = *input.OrderDate
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
			if err := tx.Where("order_id = ?", order.ID).Delete(&trade.SalesOrderItem{}).Error; err != nil {
				return err
			}
			order.Items = nil
			for _, it := range input.Items {
				item, err := trade.NewSalesOrderItem(order.ID, it.Description, it.Quantity, it.UnitPrice)
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

// DeleteOrder removes an order with its items and invoices
func (s *SalesService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormSalesOrderRepository(s.db.DB).Delete(ctx, id)
}

// CreateInvoice invoices an order and re-derives the order's payment status
func (s *SalesService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*trade.SalesInvoice, error) {
	var created *trade.SalesInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := persistence.NewGormSalesOrderRepository(tx)
		invoiceRepo := persistence.NewGormSalesInvoiceRepository(tx)

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return err
		}

		number, err := shared.GenerateDocumentNumber(shared.PrefixSalesInvoice, func(n string) (bool, error) {
			return invoiceRepo.InvoiceNumberExists(ctx, n)
		})
		if err != nil {
			return err
		}

		invoiceDate := time.Now()
		if input.InvoiceDate != nil {
			invoiceDate = *input.InvoiceDate
		}
		inv, err := trade.NewSalesInvoice(number, order.ID, invoiceDate, input.DueDate, input.Amount)
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

// GetInvoice fetches an invoice with its payments
func (s *SalesService) GetInvoice(ctx context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	return persistence.NewGormSalesInvoiceRepository(s.db.DB).FindByID(ctx, id)
}

// ListInvoices returns a page of invoices
func (s *SalesService) ListInvoices(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.SalesInvoice], error) {
	repo := persistence.NewGormSalesInvoiceRepository(s.db.DB)
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
func (s *SalesService) UpdateInvoice(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*trade.SalesInvoice, error) {
	var updated *trade.SalesInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSalesInvoiceRepository(tx)
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

// DeleteInvoice removes an invoice and re-derives the order's payment status
func (s *SalesService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSalesInvoiceRepository(tx)
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

// CreatePayment records a payment against an invoice and re-derives the
// invoice and order payment statuses in one transaction
func (s *SalesService) CreatePayment(ctx context.Context, invoiceID uuid.UUID, input PaymentInput) (*trade.InvoicePayment, error) {
	var created *trade.InvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormSalesInvoiceRepository(tx)
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
	s.logger.Info("invoice payment recorded",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("amount", input.Amount.String()))
	return created, nil
}

// GetPayment fetches a single payment
func (s *SalesService) GetPayment(ctx context.Context, id uuid.UUID) (*trade.InvoicePayment, error) {
	return persistence.NewGormInvoicePaymentRepository(s.db.DB).FindByID(ctx, id)
}

// ListPayments returns an invoice's payments
func (s *SalesService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]trade.InvoicePayment, error) {
	if _, err := persistence.NewGormSalesInvoiceRepository(s.db.DB).FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return persistence.NewGormInvoicePaymentRepository(s.db.DB).FindByInvoice(ctx, invoiceID)
}

// UpdatePayment applies a partial update and re-derives the invoice and order
// payment statuses in the same transaction
func (s *SalesService) UpdatePayment(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*trade.InvoicePayment, error) {
	var updated *trade.InvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormInvoicePaymentRepository(tx)
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

// DeletePayment removes a payment and re-derives the invoice and order payment
// statuses; deleting the last payment rolls the invoice back to unpaid
func (s *SalesService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormInvoicePaymentRepository(tx)
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
func (s *SalesService) rederiveInvoice(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID) error {
	invoiceRepo := persistence.NewGormSalesInvoiceRepository(tx)
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

// propagateToOrder re-reads the order inside the transaction and rolls its
// invoice statuses up
func (s *SalesService) propagateToOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error {
	orderRepo := persistence.NewGormSalesOrderRepository(tx)
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	order.RecalcPaymentStatus()
	return orderRepo.Save(ctx, order)
}
