package middleware

import (
	"net/http"

	"clinic-management-backend/internal/access"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the administrative surfaces. Non-admins are sent back to
// the dashboard with a message, never an error page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanManage(Identity(c)) {
			utils.SetFlash(c, "Acesso não autorizado.")
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCredits gates the tools area on a positive credit balance. Admin
// status does not bypass this check.
func RequireCredits() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanUseTools(Identity(c)) {
			utils.SetFlash(c, "Você não tem créditos suficientes. Abasteça seus créditos.")
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
