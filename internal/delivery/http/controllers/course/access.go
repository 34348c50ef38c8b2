package course

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/middleware"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/access"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type AccessService interface {
	CanAccess(ctx context.Context, userID, courseID uuid.UUID) (access.Access, error)
}

type AccessHandler struct {
	log     logger.Log
	service AccessService
}

func NewAccessHandler(log logger.Log, s AccessService) *AccessHandler {
	return &AccessHandler{
		log:     log,
		service: s,
	}
}

// CourseAccess reports whether the caller may open the course content.
// A missing course is 404, a denial is 403 with the reason in the body.
func (h *AccessHandler) CourseAccess(c *gin.Context) {
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

	result, err := h.service.CanAccess(c.Request.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("access check failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.Granted {
		c.JSON(http.StatusForbidden, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
