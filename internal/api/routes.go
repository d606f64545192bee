package api

import (
	"github.com/gin-gonic/gin"
	"github.com/youruser/mockupapp/internal/mockup"
)

func RegisterRoutes(r *gin.Engine, gen *mockup.Generator) {
	h := &handler{gen: gen}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/templates", h.listTemplates)
		api.POST("/mockups", h.createMockups)
	}
}

// NewRouter builds the gin engine serving the mockup API.
func NewRouter(gen *mockup.Generator) *gin.Engine {
	r := gin.Default()
	// uploads are streamed to disk past this size
	r.MaxMultipartMemory = 32 << 20
	RegisterRoutes(r, gen)
	return r
}
