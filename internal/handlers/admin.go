package handlers

import (
	"errors"
	"net/http"

	"github.com/egonzalezhe/techflow/internal/auth"
	"github.com/egonzalezhe/techflow/internal/dto"
	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the session-gated management pages.
type AdminHandler struct {
	svc *service.CatalogService
}

// NewAdminHandler returns a new AdminHandler.
func NewAdminHandler(svc *service.CatalogService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Dashboard renders the admin service table.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	sess, _ := auth.SessionFromContext(c)
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Services": list,
		"Username": sess.Username,
	})
}

// AddForm renders the empty "nuevo servicio" form.
func (h *AdminHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_add.html", gin.H{
		"Form": dto.ServiceForm{Icono: service.DefaultIcon},
	})
}

// AddSubmit creates a service from the form. Validation failures re-render
// the form with the entered values and an inline error.
func (h *AdminHandler) AddSubmit(c *gin.Context) {
	var form dto.ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_add.html", gin.H{
			"Form": form, "Error": err.Error(),
		})
		return
	}
	_, err := h.svc.Create(c.Request.Context(), service.CreateServiceInput{
		Name:        form.Nombre,
		Description: form.Descripcion,
		Price:       form.Precio,
		Stock:       form.Stock,
		Promotion:   form.Promocion != "",
		Icon:        form.Icono,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.HTML(http.StatusBadRequest, "admin_add.html", gin.H{
				"Form": form, "Error": err.Error(),
			})
			return
		}
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// Delete removes a service. Deleting an absent id still redirects back
// to the admin table.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if ok {
		if err := h.svc.Delete(c.Request.Context(), id); err != nil {
			c.String(http.StatusInternalServerError, "error interno")
			return
		}
	}
	c.Redirect(http.StatusFound, "/admin")
}
