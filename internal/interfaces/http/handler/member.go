package handler

import (
	memberapp "github.com/coop-erp/backend/internal/application/member"
	"github.com/gin-gonic/gin"
)

// MemberHandler handles member, savings and profit-share endpoints
type MemberHandler struct {
	BaseHandler
	service *memberapp.Service
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service *memberapp.Service) *MemberHandler {
	return &MemberHandler{service: service}
}

// Create handles POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var input memberapp.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	m, err := h.service.CreateMember(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, m)
}

// Get handles GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// List handles GET /members
func (h *MemberHandler) List(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListMembers(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update handles PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input memberapp.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	m, err := h.service.UpdateMember(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// Delete handles DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateSavingsTransaction handles POST /members/:id/savings-transactions
func (h *MemberHandler) CreateSavingsTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input memberapp.SavingsTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	st, err := h.service.CreateSavingsTransaction(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, st)
}

// ListSavingsTransactions handles GET /members/:id/savings-transactions
func (h *MemberHandler) ListSavingsTransactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListSavingsTransactions(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// CreateSHUDistribution handles POST /shu-distributions
func (h *MemberHandler) CreateSHUDistribution(c *gin.Context) {
	var input memberapp.SHUDistributionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	dist, err := h.service.CreateSHUDistribution(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dist)
}

// CompleteSHUDistribution handles POST /shu-distributions/:id/complete
func (h *MemberHandler) CompleteSHUDistribution(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	dist, err := h.service.CompleteSHUDistribution(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dist)
}

// ListSHUDistributions handles GET /shu-distributions
func (h *MemberHandler) ListSHUDistributions(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListSHUDistributions(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
