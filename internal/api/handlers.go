package api

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by every handler group.
type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// RegisterRoutes mounts every handler on the engine's root group.
func RegisterRoutes(router *gin.Engine, handlers ...RouteRegistrar) {
	root := router.Group("")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}
}
