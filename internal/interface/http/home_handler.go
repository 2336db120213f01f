package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/config"
	"blogapi/pkg/response"
)

// HomeHandler serves the health/environment probe.
type HomeHandler struct {
	Cfg *config.Config
}

func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{Cfg: cfg}
}

// Get GET /
func (h *HomeHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"environment": h.Cfg.Env}, "ok", nil)
}
