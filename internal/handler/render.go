package handler

import (
	"net/http"
	"strconv"

	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// render hands a named template and its data to the templating collaborator.
// The pending flash message and the current identity ride along so every page
// can show them.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if message := utils.TakeFlash(c); message != "" {
		data["flash"] = message
	}
	if identity := middleware.Identity(c); identity != nil {
		data["user"] = identity
	}
	c.HTML(http.StatusOK, name, data)
}

// parseID parses a numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 - página não encontrada")
}
