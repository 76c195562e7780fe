package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalesOrderRepository implements trade.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID loads the order with its items and invoices (with payments)
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var o trade.SalesOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Invoices").
		Preload("Invoices.Payments").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// OrderNumberExists reports whether an order number is already taken
func (r *GormSalesOrderRepository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).
		Where("order_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all orders matching the filter, without children
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	query := applyFilter(r.db.WithContext(ctx).Model(&trade.SalesOrder{}), filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&trade.SalesOrder{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates an order together with its items
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	return r.db.WithContext(ctx).Omit("Invoices").Save(order).Error
}

// Delete removes an order and, through FK constraints, its children
func (r *GormSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.SalesOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSalesInvoiceRepository implements trade.SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// FindByID loads the invoice with its payments
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	var inv trade.SalesInvoice
	err := r.db.WithContext(ctx).Preload("Payments").First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// InvoiceNumberExists reports whether an invoice number is already taken
func (r *GormSalesInvoiceRepository) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.SalesInvoice{}).
		Where("invoice_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all invoices matching the filter
func (r *GormSalesInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesInvoice, error) {
	var invoices []trade.SalesInvoice
	query := applyFilter(r.db.WithContext(ctx).Model(&trade.SalesInvoice{}), filter)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormSalesInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&trade.SalesInvoice{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates an invoice together with its payments
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, invoice *trade.SalesInvoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes an invoice and its payments
func (r *GormSalesInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.SalesInvoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormInvoicePaymentRepository implements trade.InvoicePaymentRepository using GORM
type GormInvoicePaymentRepository struct {
	db *gorm.DB
}

// NewGormInvoicePaymentRepository creates a new GormInvoicePaymentRepository
func NewGormInvoicePaymentRepository(db *gorm.DB) *GormInvoicePaymentRepository {
	return &GormInvoicePaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormInvoicePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.InvoicePayment, error) {
	var p trade.InvoicePayment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByInvoice finds an invoice's payments
func (r *GormInvoicePaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]trade.InvoicePayment, error) {
	var payments []trade.InvoicePayment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormInvoicePaymentRepository) Save(ctx context.Context, payment *trade.InvoicePayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment
func (r *GormInvoicePaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.InvoicePayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID loads the order with its items and invoices (with payments)
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	var o trade.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Invoices").
		Preload("Invoices.Payments").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// OrderNumberExists reports whether an order number is already taken
func (r *GormPurchaseOrderRepository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
		Where("order_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all orders matching the filter, without children
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := applyFilter(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates an order together with its items
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.db.WithContext(ctx).Omit("Invoices").Save(order).Error
}

// Delete removes an order and its children
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.PurchaseOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSupplierInvoiceRepository implements trade.SupplierInvoiceRepository using GORM
type GormSupplierInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSupplierInvoiceRepository creates a new GormSupplierInvoiceRepository
func NewGormSupplierInvoiceRepository(db *gorm.DB) *GormSupplierInvoiceRepository {
	return &GormSupplierInvoiceRepository{db: db}
}

// FindByID loads the invoice with its payments
func (r *GormSupplierInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SupplierInvoice, error) {
	var inv trade.SupplierInvoice
	err := r.db.WithContext(ctx).Preload("Payments").First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// InvoiceNumberExists reports whether an invoice number is already taken
func (r *GormSupplierInvoiceRepository) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.SupplierInvoice{}).
		Where("invoice_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all invoices matching the filter
func (r *GormSupplierInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SupplierInvoice, error) {
	var invoices []trade.SupplierInvoice
	query := applyFilter(r.db.WithContext(ctx).Model(&trade.SupplierInvoice{}), filter)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormSupplierInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&trade.SupplierInvoice{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates an invoice together with its payments
func (r *GormSupplierInvoiceRepository) Save(ctx context.Context, invoice *trade.SupplierInvoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes an invoice and its payments
func (r *GormSupplierInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.SupplierInvoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSupplierInvoicePaymentRepository implements trade.SupplierInvoicePaymentRepository using GORM
type GormSupplierInvoicePaymentRepository struct {
	db *gorm.DB
}

// NewGormSupplierInvoicePaymentRepository creates a new GormSupplierInvoicePaymentRepository
func NewGormSupplierInvoicePaymentRepository(db *gorm.DB) *GormSupplierInvoicePaymentRepository {
	return &GormSupplierInvoicePaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormSupplierInvoicePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SupplierInvoicePayment, error) {
	var p trade.SupplierInvoicePayment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByInvoice finds an invoice's payments
func (r *GormSupplierInvoicePaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]trade.SupplierInvoicePayment, error) {
	var payments []trade.SupplierInvoicePayment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormSupplierInvoicePaymentRepository) Save(ctx context.Context, payment *trade.SupplierInvoicePayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment
func (r *GormSupplierInvoicePaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.SupplierInvoicePayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
