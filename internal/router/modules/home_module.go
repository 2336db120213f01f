package modules

import (
	"github.com/gin-gonic/gin"

	handlers "blogapi/internal/interface/http"
)

// HomeModule wires the health/environment probe.
type HomeModule struct {
	Handler *handlers.HomeHandler
}

func NewHomeModule(h *handlers.HomeHandler) *HomeModule {
	return &HomeModule{Handler: h}
}

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Get)
}
