package http

import "github.com/gin-gonic/gin"

// Register attaches catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/featured", h.featured)
	rg.GET("/by-region", h.byRegion)
	rg.GET("/recent", h.recent)
	rg.GET("/categories", h.categories)
	rg.GET("/regions", h.regions)
	rg.GET("/:id", h.getByID)
}
