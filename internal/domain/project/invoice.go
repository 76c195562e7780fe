package project

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectInvoice bills a customer for project work. Its subtotal and total
// are derived from its items, its payment status from its payments, and the
// owning project's total_invoiced from all invoice totals.
type ProjectInvoice struct {
	shared.BaseEntity
	InvoiceNumber string                  `json:"invoice_number" gorm:"size:100;uniqueIndex;not null"`
	ProjectID     uuid.UUID               `json:"project_id" gorm:"type:uuid;index;not null"`
	InvoiceDate   time.Time               `json:"invoice_date" gorm:"not null"`
	DueDate       *time.Time              `json:"due_date"`
	Subtotal      decimal.Decimal         `json:"subtotal" gorm:"type:decimal(12,2);default:0"`
	TaxAmount     decimal.Decimal         `json:"tax_amount" gorm:"type:decimal(12,2);default:0"`
	TotalAmount   decimal.Decimal         `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	PaymentStatus shared.SettlementStatus `json:"payment_status" gorm:"size:50;default:'unpaid'"`
	Notes         string                  `json:"notes" gorm:"type:text"`

	Items    []ProjectInvoiceItem    `json:"items,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Payments []ProjectInvoicePayment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// ProjectInvoiceItem is one line on a project invoice
type ProjectInvoiceItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID       `json:"invoice_id" gorm:"type:uuid;index;not null"`
	Description string          `json:"description" gorm:"size:500;not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:decimal(12,2);not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
}

// ProjectInvoicePayment is a payment received against a project invoice
type ProjectInvoicePayment struct {
	shared.BaseEntity
	InvoiceID     uuid.UUID       `json:"invoice_id" gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	Reference     string          `json:"reference" gorm:"size:255"`
}

// NewProjectInvoice creates an unpaid invoice for a project
func NewProjectInvoice(invoiceNumber string, projectID uuid.UUID, invoiceDate time.Time, dueDate *time.Time, taxAmount decimal.Decimal) (*ProjectInvoice, error) {
	if strings.TrimSpace(invoiceNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Invoice number cannot be empty")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Project is required")
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Tax amount cannot be negative")
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	return &ProjectInvoice{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceNumber: invoiceNumber,
		ProjectID:     projectID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Subtotal:      decimal.Zero,
		TaxAmount:     taxAmount,
		TotalAmount:   taxAmount,
		PaymentStatus: shared.SettlementStatusUnpaid,
	}, nil
}

// NewProjectInvoiceItem creates an invoice line with its subtotal computed
func NewProjectInvoiceItem(invoiceID uuid.UUID, description string, quantity, unitPrice decimal.Decimal) (*ProjectInvoiceItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item unit price cannot be negative")
	}
	return &ProjectInvoiceItem{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   invoiceID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity.Mul(unitPrice),
	}, nil
}

// RecalcTotals recomputes the invoice subtotal from its items and the grand
// total as subtotal plus tax
func (inv *ProjectInvoice) RecalcTotals() {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	inv.Subtotal = subtotal
	inv.TotalAmount = subtotal.Add(inv.TaxAmount)
	inv.Touch()
}

// AddPayment records a payment and rederives the invoice payment status
func (inv *ProjectInvoice) AddPayment(amount decimal.Decimal, date time.Time, method, reference string) (*ProjectInvoicePayment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Payment amount must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}
	p := &ProjectInvoicePayment{
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
func (inv *ProjectInvoice) RecalcPaymentStatus() {
	amounts := make([]decimal.Decimal, len(inv.Payments))
	for i, p := range inv.Payments {
		amounts[i] = p.Amount
	}
	inv.PaymentStatus = shared.DeriveSettlementStatus(inv.TotalAmount, shared.SumPayments(amounts))
	inv.Touch()
}
