package handler

import (
	tradeapp "github.com/coop-erp/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// SalesHandler handles sales order, invoice and payment endpoints
type SalesHandler struct {
	BaseHandler
	service *tradeapp.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(service *tradeapp.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

// CreateOrder handles POST /sales-orders
func (h *SalesHandler) CreateOrder(c *gin.Context) {
	var input tradeapp.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetOrder handles GET /sales-orders/:id
func (h *SalesHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders handles GET /sales-orders
func (h *SalesHandler) ListOrders(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListOrders(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateOrder handles PUT /sales-orders/:id
func (h *SalesHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	order, err := h.service.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// DeleteOrder handles DELETE /sales-orders/:id
func (h *SalesHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateInvoice handles POST /sales-invoices
func (h *SalesHandler) CreateInvoice(c *gin.Context) {
	var input tradeapp.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	inv, err := h.service.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// GetInvoice handles GET /sales-invoices/:id
func (h *SalesHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inv, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListInvoices handles GET /sales-invoices
func (h *SalesHandler) ListInvoices(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListInvoices(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateInvoice handles PUT /sales-invoices/:id
func (h *SalesHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	inv, err := h.service.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// DeleteInvoice handles DELETE /sales-invoices/:id
func (h *SalesHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePayment handles POST /sales-invoices/:id/payments
func (h *SalesHandler) CreatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	payment, err := h.service.CreatePayment(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// ListPayments handles GET /sales-invoices/:id/payments
func (h *SalesHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payments, err := h.service.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// GetPayment handles GET /sales-payments/:id
func (h *SalesHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// UpdatePayment handles PUT /sales-payments/:id
func (h *SalesHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	payment, err := h.service.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// DeletePayment handles DELETE /sales-payments/:id
func (h *SalesHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PurchaseHandler handles purchase order, supplier invoice and payment endpoints
type PurchaseHandler struct {
	BaseHandler
	service *tradeapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(service *tradeapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// CreateOrder handles POST /purchase-orders
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	var input tradeapp.CreatePurchaseOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetOrder handles GET /purchase-orders/:id
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders handles GET /purchase-orders
func (h *PurchaseHandler) ListOrders(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListOrders(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateOrder handles PUT /purchase-orders/:id
func (h *PurchaseHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdatePurchaseOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	order, err := h.service.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// DeleteOrder handles DELETE /purchase-orders/:id
func (h *PurchaseHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateInvoice handles POST /supplier-invoices
func (h *PurchaseHandler) CreateInvoice(c *gin.Context) {
	var input tradeapp.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	inv, err := h.service.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// GetInvoice handles GET /supplier-invoices/:id
func (h *PurchaseHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inv, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListInvoices handles GET /supplier-invoices
func (h *PurchaseHandler) ListInvoices(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListInvoices(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateInvoice handles PUT /supplier-invoices/:id
func (h *PurchaseHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	inv, err := h.service.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// DeleteInvoice handles DELETE /supplier-invoices/:id
func (h *PurchaseHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePayment handles POST /supplier-invoices/:id/payments
func (h *PurchaseHandler) CreatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	payment, err := h.service.CreatePayment(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// ListPayments handles GET /supplier-invoices/:id/payments
func (h *PurchaseHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payments, err := h.service.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// GetPayment handles GET /supplier-payments/:id
func (h *PurchaseHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// UpdatePayment handles PUT /supplier-payments/:id
func (h *PurchaseHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input tradeapp.UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	payment, err := h.service.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// DeletePayment handles DELETE /supplier-payments/:id
func (h *PurchaseHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
