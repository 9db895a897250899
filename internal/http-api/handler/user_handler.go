package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notifyhub/internal/config"
	"notifyhub/internal/http-api/dto"
	"notifyhub/internal/http-api/pagination"
	"notifyhub/internal/http-api/service"
)

type UserHandler struct {
	svc service.UserService
	cfg *config.Config
}

func NewUserHandler(svc service.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{svc: svc, cfg: cfg}
}

// RegisterRoutes wires the user endpoints. Registration is intentionally
// open; the read endpoints sit behind the basic-auth gate.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/users", h.Register)
	rg.GET("/users", authRequired, h.List)
	rg.GET("/users/:id", authRequired, h.Get)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Password)
	switch {
	case errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"messages": gin.H{"password": err.Error()},
		})
	case errors.Is(err, service.ErrUserNameInUse):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("a user with the name %q already exists", req.Name),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.StoreMessage(err)})
	default:
		c.JSON(http.StatusCreated, dto.FromUserModel(*user, baseURL(c)))
	}
}

func (h *UserHandler) List(c *gin.Context) {
	page, err := pagination.ParsePage(c, h.cfg.PageParamName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	users, total, err := h.svc.List(c.Request.Context(), page, h.cfg.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	base := baseURL(c)
	results := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, dto.FromUserModel(user, base))
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(c, h.cfg.PageParamName, page, h.cfg.DefaultPageSize, total, results))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromUserModel(*user, baseURL(c)))
}
