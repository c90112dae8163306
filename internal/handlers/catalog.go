package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public pages.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler returns a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Home renders the landing page.
func (h *CatalogHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// List renders the public service list.
func (h *CatalogHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	c.HTML(http.StatusOK, "services.html", gin.H{"Services": list})
}

// Detail renders one service. Unknown ids route back to the list, never a 404.
func (h *CatalogHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/servicios")
		return
	}
	svc, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Redirect(http.StatusFound, "/servicios")
			return
		}
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	c.HTML(http.StatusOK, "detail.html", gin.H{"Service": svc})
}

// parseID reads an int64 path parameter. ok is false when it is not a number.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
