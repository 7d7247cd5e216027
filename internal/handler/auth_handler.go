package handler

import (
	"net/http"

	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/models"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// authService is what the auth handler needs from the service layer
type authService interface {
	Register(username, password string) (*models.User, error)
	Login(username, password string) (token string, user *models.User, err error)
	Logout(token string) error
}

type AuthHandler struct {
	auth       authService
	sessionTTL int // cookie max age in seconds
}

func NewAuthHandler(auth authService, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		sessionTTL: sessionTTLSeconds,
	}
}

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Index redirects the root path to the login page
func (h *AuthHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, "login.html", nil)
}

// Login verifies credentials and establishes the session cookie. The failure
// message is the same whether the username or the password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "login.html", gin.H{"flash": "Login inválido. Verifique usuário e senha."})
		return
	}

	token, _, err := h.auth.Login(form.Username, form.Password)
	if err != nil {
		render(c, "login.html", gin.H{"flash": "Login inválido. Verifique usuário e senha."})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.sessionTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, "register.html", nil)
}

// Register creates a non-admin account with zero credits
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Preencha usuário e senha.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := h.auth.Register(form.Username, form.Password); err != nil {
		utils.SetFlash(c, "Usuário já existe!")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	utils.SetFlash(c, "Usuário criado com sucesso!")
	c.Redirect(http.StatusFound, "/login")
}

// Logout revokes the session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.auth.Logout(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
