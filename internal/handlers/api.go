package handlers

import (
	"net/http"

	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the JSON endpoints consumed outside the rendered pages.
type APIHandler struct {
	svc *service.CatalogService
}

// NewAPIHandler returns a new APIHandler.
func NewAPIHandler(svc *service.CatalogService) *APIHandler {
	return &APIHandler{svc: svc}
}

// Services returns every service as a JSON array. Field names stay in
// Spanish (nombre, descripcion, precio, stock, promocion, icono) for
// compatibility with existing consumers.
func (h *APIHandler) Services(c *gin.Context) {
	records, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.JSON(http.StatusOK, records)
}
