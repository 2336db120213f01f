package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/application"
	"blogapi/pkg/response"
	"blogapi/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type editorCategoryRequest struct {
	Name string `json:"name" binding:"required,min=3,max=40"`
	Slug string `json:"slug" binding:"required"`
}

func categoryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid category id", nil)
		return 0, false
	}
	return id, true
}

// List GET /v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories", nil)
}

// Get GET /v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	category, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, category, "category", nil)
}

// Create POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req editorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	category, err := h.Svc.Create(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, category, "category created", nil)
}

// Update PUT /v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	var req editorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	category, err := h.Svc.Update(c.Request.Context(), id, req.Name, req.Slug)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, category, "category updated", nil)
}

// Delete DELETE /v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	category, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, category, "category deleted", nil)
}
