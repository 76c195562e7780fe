package trade

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment status of an order, independent of payment
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// SalesOrder is a customer order. Monetary totals are derived from its items;
// PaymentStatus is derived from the statuses of its invoices.
type SalesOrder struct {
	shared.BaseEntity
	OrderNumber   string                  `json:"order_number" gorm:"size:100;uniqueIndex;not null"`
	CustomerID    uuid.UUID               `json:"customer_id" gorm:"type:uuid;index;not null"`
	OrderDate     time.Time               `json:"order_date" gorm:"not null"`
	Status        OrderStatus             `json:"status" gorm:"size:50;default:'draft'"`
	PaymentStatus shared.SettlementStatus `json:"payment_status" gorm:"size:50;default:'unpaid'"`
	Subtotal      decimal.Decimal         `json:"subtotal" gorm:"type:decimal(12,2);default:0"`
	TaxAmount     decimal.Decimal         `json:"tax_amount" gorm:"type:decimal(12,2);default:0"`
	TotalAmount   decimal.Decimal         `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Notes         string                  `json:"notes" gorm:"type:text"`

	Items    []SalesOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Invoices []SalesInvoice   `json:"invoices,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// SalesOrderItem is one line on a sales order
type SalesOrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `json:"order_id" gorm:"type:uuid;index;not null"`
	Description string          `json:"description" gorm:"size:500;not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:decimal(12,2);not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
}

// NewSalesOrderItem creates an order line with its subtotal computed
func NewSalesOrderItem(orderID uuid.UUID, description string, quantity, unitPrice decimal.Decimal) (*SalesOrderItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item unit price cannot be negative")
	}
	return &SalesOrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity.Mul(unitPrice),
	}, nil
}

// NewSalesOrder creates a draft order with no items
func NewSalesOrder(orderNumber string, customerID uuid.UUID, orderDate time.Time, taxAmount decimal.Decimal) (*SalesOrder, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Customer is required")
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Tax amount cannot be negative")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	return &SalesOrder{
		BaseEntity:    shared.NewBaseEntity(),
		OrderNumber:   orderNumber,
		CustomerID:    customerID,
		OrderDate:     orderDate,
		Status:        OrderStatusDraft,
		PaymentStatus: shared.SettlementStatusUnpaid,
		Subtotal:      decimal.Zero,
		TaxAmount:     taxAmount,
		TotalAmount:   taxAmount,
	}, nil
}

// RecalcTotals recomputes the order subtotal from its items and the grand
// total as subtotal plus tax. Call after any item change.
func (o *SalesOrder) RecalcTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	o.Subtotal = subtotal
	o.TotalAmount = subtotal.Add(o.TaxAmount)
	o.Touch()
}

// RecalcPaymentStatus rolls the invoice payment statuses up to the order
func (o *SalesOrder) RecalcPaymentStatus() {
	statuses := make([]shared.SettlementStatus, len(o.Invoices))
	for i, inv := range o.Invoices {
		statuses[i] = inv.PaymentStatus
	}
	o.PaymentStatus = shared.DeriveOrderSettlementStatus(statuses)
	o.Touch()
}
