package handler

import (
	assetapp "github.com/coop-erp/backend/internal/application/asset"
	"github.com/gin-gonic/gin"
)

// AssetHandler handles fixed asset, depreciation and maintenance endpoints
type AssetHandler struct {
	BaseHandler
	service *assetapp.Service
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(service *assetapp.Service) *AssetHandler {
	return &AssetHandler{service: service}
}

// Create handles POST /assets
func (h *AssetHandler) Create(c *gin.Context) {
	var input assetapp.CreateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	a, err := h.service.CreateAsset(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, a)
}

// Get handles GET /assets/:id
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, a)
}

// List handles GET /assets
func (h *AssetHandler) List(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.ListAssets(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update handles PUT /assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input assetapp.UpdateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	a, err := h.service.UpdateAsset(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, a)
}

// Delete handles DELETE /assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAsset(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateDepreciation handles POST /assets/:id/depreciations
func (h *AssetHandler) CreateDepreciation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input assetapp.DepreciationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	d, err := h.service.CreateDepreciation(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, d)
}

// ListDepreciations handles GET /assets/:id/depreciations
func (h *AssetHandler) ListDepreciations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	entries, err := h.service.ListDepreciations(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// GetDepreciation handles GET /depreciations/:id
func (h *AssetHandler) GetDepreciation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.service.GetDepreciation(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// UpdateDepreciation handles PUT /depreciations/:id
func (h *AssetHandler) UpdateDepreciation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input assetapp.UpdateDepreciationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	d, err := h.service.UpdateDepreciation(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// DeleteDepreciation handles DELETE /depreciations/:id
func (h *AssetHandler) DeleteDepreciation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDepreciation(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateMaintenance handles POST /assets/:id/maintenance
func (h *AssetHandler) CreateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input assetapp.MaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	m, err := h.service.CreateMaintenance(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, m)
}

// ListMaintenance handles GET /assets/:id/maintenance
func (h *AssetHandler) ListMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindList(c)
	if !ok {
		return
	}
	records, err := h.service.ListMaintenance(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// GetMaintenance handles GET /maintenance/:id
func (h *AssetHandler) GetMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.service.GetMaintenance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// UpdateMaintenance handles PUT /maintenance/:id
func (h *AssetHandler) UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input assetapp.UpdateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	m, err := h.service.UpdateMaintenance(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// DeleteMaintenance handles DELETE /maintenance/:id
func (h *AssetHandler) DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMaintenance(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
