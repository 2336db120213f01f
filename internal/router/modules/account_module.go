package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogapi/internal/container"
	handlers "blogapi/internal/interface/http"
	"blogapi/internal/interface/middleware"
	"blogapi/pkg/helpers"
)

// AccountModule wires account HTTP handlers into routes.
// Public: POST /v1/accounts/, POST /v1/accounts/login
// Protected: POST /v1/accounts/upload-image
type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/v1/accounts/", registerLimiter, m.Handler.Register)
	rg.POST("/v1/accounts/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.POST("/v1/accounts/upload-image", m.Handler.UploadImage)
	}
}
