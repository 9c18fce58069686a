package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

// AuthHandler holds the session store for the login flow.
type AuthHandler struct {
	store  sessions.Store
	logger zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store sessions.Store, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: store, logger: logger}
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginForm renders the login view.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login starts a session when both fields are non-empty. There is no
// credential verification beyond that. Empty credentials redirect to the
// plan-input view rather than back to login, matching the long-standing
// behavior of this flow.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBind(&req)

	if req.Username == "" || req.Password == "" {
		c.Redirect(http.StatusFound, "/new")
		return
	}

	session, _ := h.store.Get(c.Request, SessionName)
	session.Values[SessionUserKey] = req.Username
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.logger.Error().Err(err).Msg("failed to save session")
		c.String(http.StatusInternalServerError, "Could not start your session. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
