package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notifyhub/internal/http-api/dto"
	"notifyhub/internal/http-api/service"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notification_categories", h.List)
	rg.POST("/notification_categories", h.Create)
	rg.GET("/notification_categories/:id", h.Get)
	rg.PATCH("/notification_categories/:id", h.Update)
	rg.DELETE("/notification_categories/:id", h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	base := baseURL(c)
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, dto.FromCategoryModel(category, base))
	}

	c.JSON(http.StatusOK, gin.H{"categories": resp})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.svc.Create(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, service.ErrCategoryNameInUse):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("a category with the name %q already exists", req.Name),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.JSON(http.StatusCreated, dto.FromCategoryDetail(*category, baseURL(c)))
	}
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
		return
	}

	category, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromCategoryDetail(*category, baseURL(c)))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.svc.Update(c.Request.Context(), id, req.Name)
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
	case errors.Is(err, service.ErrCategoryNameInUse):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("a category with the name %q already exists", *req.Name),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.JSON(http.StatusOK, dto.FromCategoryDetail(*category, baseURL(c)))
	}
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
		return
	}

	err = h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "notification category not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.Status(http.StatusNoContent)
	}
}
