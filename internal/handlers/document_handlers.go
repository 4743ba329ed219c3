package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"invoicepress/internal/common"
	"invoicepress/internal/models"
	"invoicepress/internal/services"
)

// DocumentHandlers handles HTTP requests for document generation. The
// caller supplies an already-validated snapshot payload; these handlers
// do not own any CRUD surface.
type DocumentHandlers struct {
	documentService services.DocumentService
}

// NewDocumentHandlers creates a new document handlers instance
func NewDocumentHandlers(documentService services.DocumentService) *DocumentHandlers {
	return &DocumentHandlers{documentService: documentService}
}

type generateDocumentRequest struct {
	Snapshot     models.InvoiceSnapshot   `json:"snapshot"`
	Template     *models.TemplateSnapshot `json:"template,omitempty"`
	CustomFields []models.CustomField     `json:"custom_fields,omitempty"`
	Overwrite    bool                     `json:"overwrite"`
}

// RenderDocument handles POST /documents/render
// Renders the snapshot and returns the PDF bytes inline.
func (h *DocumentHandlers) RenderDocument(c echo.Context) error {
	ctx := c.Request().Context()

	var req generateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateCurrencyCode(req.Snapshot.CurrencyCode, "currency_code"); err != nil {
		return common.SendValidationError(c, "currency_code", err.Error())
	}

	doc, err := h.documentService.GenerateDocument(ctx, services.GenerateRequest{
		Snapshot:     req.Snapshot,
		Template:     req.Template,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSnapshot) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to generate document: "+err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}

// CreateDocument handles POST /documents
// Renders the snapshot, stores the PDF in object storage and returns a
// locator plus a presigned download URL.
func (h *DocumentHandlers) CreateDocument(c echo.Context) error {
	ctx := c.Request().Context()

	var req generateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateCurrencyCode(req.Snapshot.CurrencyCode, "currency_code"); err != nil {
		return common.SendValidationError(c, "currency_code", err.Error())
	}

	doc, err := h.documentService.GenerateDocument(ctx, services.GenerateRequest{
		Snapshot:     req.Snapshot,
		Template:     req.Template,
		CustomFields: req.CustomFields,
		Store:        true,
		Overwrite:    req.Overwrite,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSnapshot) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to generate document: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Document generated and stored successfully",
		"file_name":  doc.FileName,
		"page_count": doc.PageCount,
		"pdf_url":    doc.URL,
		"expires_in": "24 hours",
		"locator":    doc.Locator,
	})
}
