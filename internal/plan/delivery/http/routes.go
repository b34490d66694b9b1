package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	plans := rg.Group("/plans")
	{
		plans.GET("/:date", h.Get)
	}
}
