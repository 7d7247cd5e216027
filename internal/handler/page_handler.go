package handler

import "github.com/gin-gonic/gin"

// PageHandler serves the static authenticated pages. Access to the tools page
// is credit-gated in the route setup.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	render(c, "dashboard.html", nil)
}

func (h *PageHandler) Tools(c *gin.Context) {
	render(c, "tools.html", nil)
}
