package course

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/middleware"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type QueryService interface {
	Courses(ctx context.Context) ([]models.CoursePreview, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.CoursePreview, error)
	SearchCourses(ctx context.Context, query string, count, offset int) ([]models.CoursePreview, int, error)
	LessonsForUser(ctx context.Context, userID, courseID uuid.UUID) ([]models.Lesson, error)
	QuizzesForUser(ctx context.Context, userID, courseID uuid.UUID) ([]models.Quiz, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(log logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     log,
		service: s,
	}
}

func (h *QueryHandler) ListCourses(c *gin.Context) {
	previews, err := h.service.Courses(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("list courses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   len(previews),
		"courses": previews,
	})
}

func (h *QueryHandler) SearchCourses(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	limit := 10
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	offset := 0
	if s := c.Query("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		offset = v
	}

	previews, total, err := h.service.SearchCourses(c.Request.Context(), query, limit, offset)
	if err != nil {
		h.log.ErrorErr("course search failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"courses": previews,
	})
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	preview, err := h.service.CourseByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("get course failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *QueryHandler) CourseLessons(c *gin.Context) {
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

	lessons, err := h.service.LessonsForUser(c.Request.Context(), userID, courseID)
	if err != nil {
		h.gatedError(c, "get lessons failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

func (h *QueryHandler) CourseQuizzes(c *gin.Context) {
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

	quizzes, err := h.service.QuizzesForUser(c.Request.Context(), userID, courseID)
	if err != nil {
		h.gatedError(c, "get quizzes failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// gatedError keeps the not-found and forbidden outcomes distinct: a missing
// course is 404 even for callers who would not have access to it.
func (h *QueryHandler) gatedError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, app_errors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr(msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
