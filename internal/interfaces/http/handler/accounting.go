package handler

import (
	accountingapp "github.com/coop-erp/backend/internal/application/accounting"
	"github.com/gin-gonic/gin"
)

// AccountingHandler handles chart of accounts, journal entry and fiscal period endpoints
type AccountingHandler struct {
	BaseHandler
	service *accountingapp.Service
}

// NewAccountingHandler creates a new AccountingHandler
func NewAccountingHandler(service *accountingapp.Service) *AccountingHandler {
	return &AccountingHandler{service: service}
}

// CreateAccount handles POST /accounts
func (h *AccountingHandler) CreateAccount(c *gin.Context) {
	var input accountingapp.CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	account, err := h.service.CreateAccount(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// GetAccount handles GET /accounts/:id
func (h *AccountingHandler) GetAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	account, err := h.service.GetAccount(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// ListAccounts handles GET /accounts
func (h *AccountingHandler) ListAccounts(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListAccounts(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountingHandler) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input accountingapp.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	account, err := h.service.UpdateAccount(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountingHandler) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAccount(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateJournalEntry handles POST /journal-entries
func (h *AccountingHandler) CreateJournalEntry(c *gin.Context) {
	var input accountingapp.CreateJournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	entry, err := h.service.CreateJournalEntry(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// GetJournalEntry handles GET /journal-entries/:id
func (h *AccountingHandler) GetJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.service.GetJournalEntry(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// ListJournalEntries handles GET /journal-entries
func (h *AccountingHandler) ListJournalEntries(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListJournalEntries(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateJournalEntry handles PUT /journal-entries/:id
func (h *AccountingHandler) UpdateJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input accountingapp.UpdateJournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	entry, err := h.service.UpdateJournalEntry(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// PostJournalEntry handles POST /journal-entries/:id/post
func (h *AccountingHandler) PostJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.service.PostJournalEntry(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// DeleteJournalEntry handles DELETE /journal-entries/:id
func (h *AccountingHandler) DeleteJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteJournalEntry(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateFiscalPeriod handles POST /fiscal-periods
func (h *AccountingHandler) CreateFiscalPeriod(c *gin.Context) {
	var input accountingapp.FiscalPeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	period, err := h.service.CreateFiscalPeriod(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, period)
}

// GetFiscalPeriod handles GET /fiscal-periods/:id
func (h *AccountingHandler) GetFiscalPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	period, err := h.service.GetFiscalPeriod(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, period)
}

// ListFiscalPeriods handles GET /fiscal-periods
func (h *AccountingHandler) ListFiscalPeriods(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListFiscalPeriods(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// CloseFiscalPeriod handles POST /fiscal-periods/:id/close
func (h *AccountingHandler) CloseFiscalPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	period, err := h.service.CloseFiscalPeriod(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, period)
}

// DeleteFiscalPeriod handles DELETE /fiscal-periods/:id
func (h *AccountingHandler) DeleteFiscalPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteFiscalPeriod(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
