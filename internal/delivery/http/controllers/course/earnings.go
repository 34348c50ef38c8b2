package course

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type EarningsService interface {
	Summary(ctx context.Context) (models.EarningsReport, error)
}

type EarningsHandler struct {
	log     logger.Log
	service EarningsService
}

func NewEarningsHandler(log logger.Log, s EarningsService) *EarningsHandler {
	return &EarningsHandler{
		log:     log,
		service: s,
	}
}

func (h *EarningsHandler) Summary(c *gin.Context) {
	report, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("earnings summary failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
