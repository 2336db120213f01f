package modules

import (
	"github.com/gin-gonic/gin"

	handlers "blogapi/internal/interface/http"
)

// PostModule wires the post read path.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/v1/posts", m.Handler.List)
	rg.GET("/v1/posts/search", m.Handler.Search)
	rg.GET("/v1/posts/:id", m.Handler.Get)
	rg.GET("/v1/posts/category/:slug", m.Handler.ListByCategory)
}
