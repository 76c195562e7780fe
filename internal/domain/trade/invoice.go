package trade

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesInvoice bills a customer for (part of) a sales order. Its payment
// status is derived from the payments recorded against it.
type SalesInvoice struct {
	shared.BaseEntity
	InvoiceNumber string                  `json:"invoice_number" gorm:"size:100;uniqueIndex;not null"`
	OrderID       uuid.UUID               `json:"order_id" gorm:"type:uuid;index;not null"`
	InvoiceDate   time.Time               `json:"invoice_date" gorm:"not null"`
	DueDate       *time.Time              `json:"due_date"`
	Amount        decimal.Decimal         `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentStatus shared.SettlementStatus `json:"payment_status" gorm:"size:50;default:'unpaid'"`
	Notes         string                  `json:"notes" gorm:"type:text"`

	Payments []InvoicePayment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// SupplierInvoice bills the cooperative for (part of) a purchase order
type SupplierInvoice struct {
	shared.BaseEntity
	InvoiceNumber string                  `json:"invoice_number" gorm:"size:100;uniqueIndex;not null"`
	OrderID       uuid.UUID               `json:"order_id" gorm:"type:uuid;index;not null"`
	InvoiceDate   time.Time               `json:"invoice_date" gorm:"not null"`
	DueDate       *time.Time              `json:"due_date"`
	Amount        decimal.Decimal         `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentStatus shared.SettlementStatus `json:"payment_status" gorm:"size:50;default:'unpaid'"`
	Notes         string                  `json:"notes" gorm:"type:text"`

	Payments []SupplierInvoicePayment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// InvoicePayment is a payment received against a sales invoice
type InvoicePayment struct {
	shared.BaseEntity
	InvoiceID     uuid.UUID       `json:"invoice_id" gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	Reference     string          `json:"reference" gorm:"size:255"`
}

// SupplierInvoicePayment is a payment made against a supplier invoice
type SupplierInvoicePayment struct {
	shared.BaseEntity
	InvoiceID     uuid.UUID       `json:"invoice_id" gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	Reference     string          `json:"reference" gorm:"size:255"`
}

func validateInvoiceFields(number string, orderID uuid.UUID, amount decimal.Decimal) error {
	if strings.TrimSpace(number) == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Invoice number cannot be empty")
	}
	if orderID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_FAILED", "Order is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_FAILED", "Invoice amount must be positive")
	}
	return nil
}

func validatePaymentAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_FAILED", "Payment amount must be positive")
	}
	return nil
}

// NewSalesInvoice creates an unpaid invoice for a sales order
func NewSalesInvoice(invoiceNumber string, orderID uuid.UUID, invoiceDate time.Time, dueDate *time.Time, amount decimal.Decimal) (*SalesInvoice, error) {
	if err := validateInvoiceFields(invoiceNumber, orderID, amount); err != nil {
		return nil, err
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	return &SalesInvoice{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceNumber: invoiceNumber,
		OrderID:       orderID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Amount:        amount,
		PaymentStatus: shared.SettlementStatusUnpaid,
	}, nil
}

// AddPayment records a payment and rederives the invoice payment status
func (inv *SalesInvoice) AddPayment(amount decimal.Decimal, date time.Time, method, reference string) (*InvoicePayment, error) {
	if err := validatePaymentAmount(amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	p := &InvoicePayment{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceID:     inv.ID,
		Amount:        amount,
		PaymentDate:   date,
		PaymentMethod: method,
		Reference:     reference,
	}
	inv.Payments = append(inv.Payments, *p)
	inv.RecalcPaymentStatus()
	return p, nil
}

// RecalcPaymentStatus rederives the status from the full payment list.
// Recomputing from scratch keeps the operation idempotent.
func (inv *SalesInvoice) RecalcPaymentStatus() {
	amounts := make([]decimal.Decimal, len(inv.Payments))
	for i, p := range inv.Payments {
		amounts[i] = p.Amount
	}
	inv.PaymentStatus = shared.DeriveSettlementStatus(inv.Amount, shared.SumPayments(amounts))
	inv.Touch()
}

// TotalPaid sums the payments recorded against the invoice
func (inv *SalesInvoice) TotalPaid() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(inv.Payments))
	for i, p := range inv.Payments {
		amounts[i] = p.Amount
	}
	return shared.SumPayments(amounts)
}

// NewSupplierInvoice creates an unpaid invoice for a purchase order
func NewSupplierInvoice(invoiceNumber string, orderID uuid.UUID, invoiceDate time.Time, dueDate *time.Time, amount decimal.Decimal) (*SupplierInvoice, error) {
	if err := validateInvoiceFields(invoiceNumber, orderID, amount); err != nil {
		return nil, err
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	return &SupplierInvoice{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceNumber: invoiceNumber,
		OrderID:       orderID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Amount:        amount,
		PaymentStatus: shared.SettlementStatusUnpaid,
	}, nil
}

// AddPayment records a payment and rederives the invoice payment status
func (inv *SupplierInvoice) AddPayment(amount decimal.Decimal, date time.Time, method, reference string) (*SupplierInvoicePayment, error) {
	if err := validatePaymentAmount(amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	p := &SupplierInvoicePayment{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceID:     inv.ID,
		Amount:        amount,
		PaymentDate:   date,
		PaymentMethod: method,
		Reference:     reference,
	}
	inv.Payments = append(inv.Payments, *p)
	inv.RecalcPaymentStatus()
	return p, nil
}

// RecalcPaymentStatus rederives the status from the full payment list
func (inv *SupplierInvoice) RecalcPaymentStatus() {
	amounts := make([]decimal.Decimal, len(inv.Payments))
	for i, p := range inv.Payments {
		amounts[i] = p.Amount
	}
	inv.PaymentStatus = shared.DeriveSettlementStatus(inv.Amount, shared.SumPayments(amounts))
	inv.Touch()
}

// TotalPaid sums the payments recorded against the invoice
func (inv *SupplierInvoice) TotalPaid() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(inv.Payments))
	for i, p := range inv.Payments {
		amounts[i] = p.Amount
	}
	return shared.SumPayments(amounts)
}
