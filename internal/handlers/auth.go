package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/egonzalezhe/techflow/internal/auth"
	"github.com/egonzalezhe/techflow/internal/dto"
	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionManager establishes and tears down sessions. *auth.Store implements it.
type SessionManager interface {
	Create(ctx context.Context, userID int64, username string) (string, error)
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// AuthHandler handles login and logout.
type AuthHandler struct {
	sessions SessionManager
	authSvc  *service.AuthService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions SessionManager, authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{sessions: sessions, authSvc: authSvc}
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginSubmit validates credentials and establishes a session. A failed
// login re-renders the page with an inline error and leaves the client
// anonymous.
func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Credenciales incorrectas"})
		return
	}
	account, err := h.authSvc.ValidateCredentials(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Credenciales incorrectas"})
			return
		}
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), account.ID, account.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	c.SetCookie(auth.CookieName, sessionID, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session. Logging out without one is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.CookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
