package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedala/internal/service"
)

// ExportHandler handles HTTP requests for the analytics export.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Get handles GET /v1/export/powerbi
func (h *ExportHandler) Get(c *gin.Context) {
	doc, err := h.exportService.Fetch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
