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

type EngagementService interface {
	Toggle(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (added bool, count int, err error)
	Untoggle(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (count int, err error)
	CoursesByUser(ctx context.Context, kind models.EngagementKind, userID uuid.UUID) ([]models.Course, error)
}

type EngagementHandler struct {
	log     logger.Log
	service EngagementService
}

func NewEngagementHandler(log logger.Log, s EngagementService) *EngagementHandler {
	return &EngagementHandler{
		log:     log,
		service: s,
	}
}

func (h *EngagementHandler) LikeCourse(c *gin.Context) {
	h.toggle(c, models.EngagementLike, "likes")
}

func (h *EngagementHandler) UnlikeCourse(c *gin.Context) {
	h.untoggle(c, models.EngagementLike, "likes")
}

func (h *EngagementHandler) FavoriteCourse(c *gin.Context) {
	h.toggle(c, models.EngagementFavorite, "favorites")
}

func (h *EngagementHandler) UnfavoriteCourse(c *gin.Context) {
	h.untoggle(c, models.EngagementFavorite, "favorites")
}

func (h *EngagementHandler) LikedCourses(c *gin.Context) {
	h.coursesByUser(c, models.EngagementLike)
}

func (h *EngagementHandler) FavoritedCourses(c *gin.Context) {
	h.coursesByUser(c, models.EngagementFavorite)
}

func (h *EngagementHandler) toggle(c *gin.Context, kind models.EngagementKind, countField string) {
	courseID, userID, ok := h.identify(c)
	if !ok {
		return
	}

	added, count, err := h.service.Toggle(c.Request.Context(), kind, courseID, userID)
	if err != nil {
		h.engagementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, countField: count})
}

func (h *EngagementHandler) untoggle(c *gin.Context, kind models.EngagementKind, countField string) {
	courseID, userID, ok := h.identify(c)
	if !ok {
		return
	}

	count, err := h.service.Untoggle(c.Request.Context(), kind, courseID, userID)
	if err != nil {
		h.engagementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{countField: count})
}

func (h *EngagementHandler) coursesByUser(c *gin.Context, kind models.EngagementKind) {
	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	courses, err := h.service.CoursesByUser(c.Request.Context(), kind, userID)
	if err != nil {
		h.log.ErrorErr("list engaged courses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *EngagementHandler) identify(c *gin.Context) (courseID, userID uuid.UUID, ok bool) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return uuid.Nil, uuid.Nil, false
	}

	userID, found := middleware.ClientID(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}
	return courseID, userID, true
}

func (h *EngagementHandler) engagementError(c *gin.Context, err error) {
	if errors.Is(err, app_errors.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.log.ErrorErr("engagement toggle failed", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
