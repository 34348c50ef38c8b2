package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (uuid.UUID, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	log     logger.Log
	service CategoryService
}

func NewCategoryHandler(log logger.Log, s CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:     log,
		service: s,
	}
}

type newCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input newCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.CreateCategory(c.Request.Context(), input.Name)
	if err != nil {
		if errors.Is(err, app_errors.ErrCategoryExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("create category failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category_id": id})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("list categories failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
