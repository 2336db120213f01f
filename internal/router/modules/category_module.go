package modules

import (
	"github.com/gin-gonic/gin"

	handlers "blogapi/internal/interface/http"
)

// CategoryModule wires category CRUD routes.
type CategoryModule struct {
	Handler *handlers.CategoryHandler
}

func NewCategoryModule(h *handlers.CategoryHandler) *CategoryModule {
	return &CategoryModule{Handler: h}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/v1/categories", m.Handler.List)
	rg.GET("/v1/categories/:id", m.Handler.Get)
	rg.POST("/v1/categories", m.Handler.Create)
	rg.PUT("/v1/categories/:id", m.Handler.Update)
	rg.DELETE("/v1/categories/:id", m.Handler.Delete)
}
