package course

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/middleware"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type PurchaseService interface {
	Purchase(ctx context.Context, courseID, userID uuid.UUID) error
	PurchasedCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error)
	Purchasers(ctx context.Context, courseID uuid.UUID) (string, []models.User, error)
}

type PurchaseHandler struct {
	log     logger.Log
	service PurchaseService
}

func NewPurchaseHandler(log logger.Log, s PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		log:     log,
		service: s,
	}
}

func (h *PurchaseHandler) PurchaseCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Purchase(c.Request.Context(), courseID, userID); err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrAlreadyPurchased):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("purchase failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "purchased"})
}

func (h *PurchaseHandler) PurchasedCourses(c *gin.Context) {
	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	courses, err := h.service.PurchasedCourses(c.Request.Context(), userID)
	if err != nil {
		h.log.ErrorErr("list purchased courses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

type purchaserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (h *PurchaseHandler) Purchasers(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	title, users, err := h.service.Purchasers(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("list purchasers failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	purchasers := make([]purchaserResponse, 0, len(users))
	for _, u := range users {
		purchasers = append(purchasers, purchaserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"course":     title,
		"purchasers": purchasers,
	})
}
