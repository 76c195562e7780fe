package handler

import (
	projectapp "github.com/coop-erp/backend/internal/application/project"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project, task, time entry and project invoice endpoints
type ProjectHandler struct {
	BaseHandler
	service *projectapp.Service
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service *projectapp.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input projectapp.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	p, err := h.service.CreateProject(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListProjects(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	p, err := h.service.UpdateProject(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateTask handles POST /projects/:id/tasks
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	task, err := h.service.CreateTask(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, task)
}

// GetTask handles GET /tasks/:id
func (h *ProjectHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.service.GetTask(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// ListTasks handles GET /projects/:id/tasks
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListTasks(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateTask handles PUT /tasks/:id
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	task, err := h.service.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// DeleteTask handles DELETE /tasks/:id
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTask(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateTimeEntry handles POST /tasks/:id/time-entries
func (h *ProjectHandler) CreateTimeEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.TimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	entry, err := h.service.CreateTimeEntry(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// ListTimeEntries handles GET /tasks/:id/time-entries
func (h *ProjectHandler) ListTimeEntries(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	entries, err := h.service.ListTimeEntries(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// UpdateTimeEntry handles PUT /time-entries/:id
func (h *ProjectHandler) UpdateTimeEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.UpdateTimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	entry, err := h.service.UpdateTimeEntry(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// DeleteTimeEntry handles DELETE /time-entries/:id
func (h *ProjectHandler) DeleteTimeEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTimeEntry(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateInvoice handles POST /projects/:id/invoices
func (h *ProjectHandler) CreateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	inv, err := h.service.CreateInvoice(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// GetInvoice handles GET /project-invoices/:id
func (h *ProjectHandler) GetInvoice(c *gin.Context) {
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

// ListInvoices handles GET /projects/:id/invoices
func (h *ProjectHandler) ListInvoices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	invoices, err := h.service.ListInvoices(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// UpdateInvoice handles PUT /project-invoices/:id
func (h *ProjectHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.UpdateInvoiceInput
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

// DeleteInvoice handles DELETE /project-invoices/:id
func (h *ProjectHandler) DeleteInvoice(c *gin.Context) {
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

// CreatePayment handles POST /project-invoices/:id/payments
func (h *ProjectHandler) CreatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.PaymentInput
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

// ListPayments handles GET /project-invoices/:id/payments
func (h *ProjectHandler) ListPayments(c *gin.Context) {
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

// GetPayment handles GET /project-payments/:id
func (h *ProjectHandler) GetPayment(c *gin.Context) {
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

// UpdatePayment handles PUT /project-payments/:id
func (h *ProjectHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input projectapp.UpdatePaymentInput
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

// DeletePayment handles DELETE /project-payments/:id
func (h *ProjectHandler) DeletePayment(c *gin.Context) {
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
