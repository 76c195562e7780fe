package handler

import (
	"fmt"
	"net/http"
	"time"

	documentapp "github.com/coop-erp/backend/internal/application/document"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document upload, versioning and download endpoints
type DocumentHandler struct {
	BaseHandler
	service *documentapp.Service
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service *documentapp.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload handles POST /documents. The file travels as multipart form data
// under the "file" field, metadata as plain form values.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}

	input, ok := h.bindUploadMeta(c)
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "unable to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, file, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

// UploadVersion handles POST /documents/:id/versions
func (h *DocumentHandler) UploadVersion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "unable to read uploaded file")
		return
	}
	defer file.Close()

	version, err := h.service.UploadVersion(c.Request.Context(), id, fileHeader.Filename, fileHeader.Size, file, c.PostForm("notes"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, version)
}

// Get handles GET /documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// List handles GET /documents
func (h *DocumentHandler) List(c *gin.Context) {
	req, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Download handles GET /documents/:id/download, streaming the stored content
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, content, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer content.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.Name),
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, doc.FileSize, contentType, content, headers)
}

// Update handles PUT /documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input documentapp.UpdateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindingError(c, err)
		return
	}
	doc, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Archive handles POST /documents/:id/archive
func (h *DocumentHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, err := h.service.Archive(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Delete handles DELETE /documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *DocumentHandler) bindUploadMeta(c *gin.Context) (documentapp.UploadInput, bool) {
	input := documentapp.UploadInput{
		Name:              c.PostForm("name"),
		DocumentType:      c.PostForm("document_type"),
		RelatedEntityType: c.PostForm("related_entity_type"),
		Description:       c.PostForm("description"),
		Tags:              c.PostForm("tags"),
	}
	if raw := c.PostForm("related_entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid related_entity_id")
			return input, false
		}
		input.RelatedEntityID = &id
	}
	if raw := c.PostForm("expiry_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.BadRequest(c, "Invalid expiry_date, expected RFC3339")
			return input, false
		}
		input.ExpiryDate = &t
	}
	return input, true
}
