package trade

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order placed with a supplier. It mirrors SalesOrder on
// the procurement side: totals come from items, payment status from supplier
// invoices.
type PurchaseOrder struct {
	shared.BaseEntity
	OrderNumber   string                  `json:"order_number" gorm:"size:100;uniqueIndex;not null"`
	SupplierID    uuid.UUID               `json:"supplier_id" gorm:"type:uuid;index;not null"`
	OrderDate     time.Time               `json:"order_date" gorm:"not null"`
	ExpectedDate  *time.Time              `json:"expected_date"`
	Status        OrderStatus             `json:"status" gorm:"size:50;default:'draft'"`
	PaymentStatus shared.SettlementStatus `json:"payment_status" gorm:"size:50;default:'unpaid'"`
	Subtotal      decimal.Decimal         `json:"subtotal" gorm:"type:decimal(12,2);default:0"`
	TaxAmount     decimal.Decimal         `json:"tax_amount" gorm:"type:decimal(12,2);default:0"`
	TotalAmount   decimal.Decimal         `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Notes         string                  `json:"notes" gorm:"type:text"`

	Items    []PurchaseOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Invoices []SupplierInvoice   `json:"invoices,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// PurchaseOrderItem is one line on a purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `json:"order_id" gorm:"type:uuid;index;not null"`
	Description string          `json:"description" gorm:"size:500;not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:decimal(12,2);not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
}

// NewPurchaseOrderItem creates an order line with its subtotal computed
func NewPurchaseOrderItem(orderID uuid.UUID, description string, quantity, unitPrice decimal.Decimal) (*PurchaseOrderItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item unit price cannot be negative")
	}
	return &PurchaseOrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity.Mul(unitPrice),
	}, nil
}

// NewPurchaseOrder creates a draft purchase order with no items
func NewPurchaseOrder(orderNumber string, supplierID uuid.UUID, orderDate time.Time, taxAmount decimal.Decimal) (*PurchaseOrder, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Order number cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Supplier is required")
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Tax amount cannot be negative")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	return &PurchaseOrder{
		BaseEntity:    shared.NewBaseEntity(),
		OrderNumber:   orderNumber,
		SupplierID:    supplierID,
		OrderDate:     orderDate,
		Status:        OrderStatusDraft,
		PaymentStatus: shared.SettlementStatusUnpaid,
		Subtotal:      decimal.Zero,
		TaxAmount:     taxAmount,
		TotalAmount:   taxAmount,
	}, nil
}

// RecalcTotals recomputes the order subtotal from its items and the grand
// total as subtotal plus tax
func (o *PurchaseOrder) RecalcTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	o.Subtotal = subtotal
	o.TotalAmount = subtotal.Add(o.TaxAmount)
	o.Touch()
}

// RecalcPaymentStatus rolls the supplier invoice statuses up to the order
func (o *PurchaseOrder) RecalcPaymentStatus() {
	statuses := make([]shared.SettlementStatus, len(o.Invoices))
	for i, inv := range o.Invoices {
		statuses[i] = inv.PaymentStatus
	}
	o.PaymentStatus = shared.DeriveOrderSettlementStatus(statuses)
	o.Touch()
}
