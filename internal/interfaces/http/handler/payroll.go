package handler

import (
	payrollapp "github.com/coop-erp/backend/internal/application/payroll"
	"github.com/gin-gonic/gin"
)

// PayrollHandler handles employee, payroll run and payroll item endpoints
type PayrollHandler struct {
	BaseHandler
	service *payrollapp.Service
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(service *payrollapp.Service) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// CreateEmployee handles POST /employees
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var input payrollapp.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	e, err := h.service.CreateEmployee(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, e)
}

// GetEmployee handles GET /employees/:id
func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, e)
}

// ListEmployees handles GET /employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListEmployees(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateEmployee handles PUT /employees/:id
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input payrollapp.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	e, err := h.service.UpdateEmployee(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, e)
}

// DeleteEmployee handles DELETE /employees/:id
func (h *PayrollHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePayroll handles POST /payrolls
func (h *PayrollHandler) CreatePayroll(c *gin.Context) {
	var input payrollapp.CreatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	p, err := h.service.CreatePayroll(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// GetPayroll handles GET /payrolls/:id
func (h *PayrollHandler) GetPayroll(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPayroll(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// ListPayrolls handles GET /payrolls
func (h *PayrollHandler) ListPayrolls(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListPayrolls(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdatePayroll handles PUT /payrolls/:id
func (h *PayrollHandler) UpdatePayroll(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input payrollapp.UpdatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	p, err := h.service.UpdatePayroll(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeletePayroll handles DELETE /payrolls/:id
func (h *PayrollHandler) DeletePayroll(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayroll(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePayrollItem handles POST /payrolls/:id/items
func (h *PayrollHandler) CreatePayrollItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input payrollapp.PayrollItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	item, err := h.service.CreatePayrollItem(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// ListPayrollItems handles GET /payrolls/:id/items
func (h *PayrollHandler) ListPayrollItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	items, err := h.service.ListPayrollItems(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// UpdatePayrollItem handles PUT /payroll-items/:id
func (h *PayrollHandler) UpdatePayrollItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input payrollapp.UpdatePayrollItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	item, err := h.service.UpdatePayrollItem(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// DeletePayrollItem handles DELETE /payroll-items/:id
func (h *PayrollHandler) DeletePayrollItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayrollItem(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
