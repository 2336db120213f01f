package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/application"
	"blogapi/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// List GET /v1/posts?page=&pageSize=
func (h *PostHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 0)
	pageSize := queryInt(c, "pageSize", 0)

	result, err := h.Svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, result, "posts", nil)
}

// Get GET /v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	post, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, post, "post", nil)
}

// ListByCategory GET /v1/posts/category/:slug?page=&pageSize=
func (h *PostHandler) ListByCategory(c *gin.Context) {
	slug := c.Param("slug")
	page := queryInt(c, "page", 0)
	pageSize := queryInt(c, "pageSize", 0)

	result, err := h.Svc.ListByCategory(c.Request.Context(), slug, page, pageSize)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, result, "posts", nil)
}

// Search GET /v1/posts/search?q=&size=
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size := queryInt(c, "size", 10)

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
