package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"notifyhub/internal/config"
	"notifyhub/internal/http-api/dto"
	"notifyhub/internal/http-api/pagination"
	"notifyhub/internal/http-api/service"
)

type NotificationHandler struct {
	svc service.NotificationService
	cfg *config.Config
}

func NewNotificationHandler(svc service.NotificationService, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{svc: svc, cfg: cfg}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.POST("/notifications", h.Create)
	rg.GET("/notifications/:id", h.Get)
	rg.PATCH("/notifications/:id", h.Update)
	rg.DELETE("/notifications/:id", h.Delete)
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, err := pagination.ParsePage(c, h.cfg.PageParamName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	notifications, total, err := h.svc.List(c.Request.Context(), page, h.cfg.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	base := baseURL(c)
	results := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		results = append(results, dto.FromNotificationModel(notification, base))
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(c, h.cfg.PageParamName, page, h.cfg.DefaultPageSize, total, results))
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if msgs := validateCategoryRef(req.NotificationCategory); msgs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"messages": msgs})
		return
	}

	notification, err := h.svc.Create(c.Request.Context(), req.Message, *req.TTL, req.NotificationCategory.Name)
	switch {
	case errors.Is(err, service.ErrMessageInUse):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("a notification with the message %q already exists", req.Message),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.JSON(http.StatusCreated, gin.H{"notification": dto.FromNotificationModel(*notification, baseURL(c))})
	}
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
		return
	}

	notification, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotificationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": dto.FromNotificationModel(*notification, baseURL(c))})
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
		return
	}

	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	patch := service.NotificationPatch{
		Message:        req.Message,
		TTL:            req.TTL,
		DisplayedTimes: req.DisplayedTimes,
		DisplayedOnce:  req.DisplayedOnce,
	}

	notification, err := h.svc.Update(c.Request.Context(), id, patch)
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
	case errors.Is(err, service.ErrMessageInUse):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("a notification with the message %q already exists", *req.Message),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.JSON(http.StatusOK, gin.H{"notification": dto.FromNotificationModel(*notification, baseURL(c))})
	}
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
		return
	}

	err = h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "notification not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.Status(http.StatusNoContent)
	}
}

// validateCategoryRef checks the normalized notification_category input the
// same way the nested category schema would: present and at least 3
// characters long.
func validateCategoryRef(ref dto.CategoryRef) map[string]string {
	if ref.Name == "" {
		return map[string]string{"notification_category": "missing data for required field"}
	}
	if utf8.RuneCountInString(ref.Name) < 3 {
		return map[string]string{"notification_category": "shorter than minimum length 3"}
	}
	return nil
}
