package progress

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

type ProgressService interface {
	RecordQuizAttempt(ctx context.Context, attempt models.QuizAttempt) (uuid.UUID, error)
	QuizProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizAttempt, error)
	ToggleLessonCompletion(ctx context.Context, userID, courseID, lessonID uuid.UUID) (bool, error)
	CompletedLessons(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type ProgressHandler struct {
	log     logger.Log
	service ProgressService
}

func NewProgressHandler(log logger.Log, s ProgressService) *ProgressHandler {
	return &ProgressHandler{
		log:     log,
		service: s,
	}
}

type quizAnswerRequest struct {
	QuestionID     uuid.UUID `json:"question_id" binding:"required"`
	SelectedOption string    `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
}

type quizAttemptRequest struct {
	CourseID uuid.UUID           `json:"course_id" binding:"required"`
	Score    float64             `json:"score"`
	Answers  []quizAnswerRequest `json:"answers"`
}

func (h *ProgressHandler) RecordQuizAttempt(c *gin.Context) {
	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var input quizAttemptRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt := models.QuizAttempt{
		UserID:   userID,
		CourseID: input.CourseID,
		Score:    input.Score,
	}
	for _, a := range input.Answers {
		attempt.Answers = append(attempt.Answers, models.QuizAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
		})
	}

	attemptID, err := h.service.RecordQuizAttempt(c.Request.Context(), attempt)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("record quiz attempt failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attempt_id": attemptID})
}

func (h *ProgressHandler) QuizProgress(c *gin.Context) {
	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	attempts, err := h.service.QuizProgress(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("quiz progress failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

func (h *ProgressHandler) ToggleLessonCompletion(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	lessonID, err := uuid.Parse(c.Param("lesson_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
		return
	}

	userID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	completed, err := h.service.ToggleLessonCompletion(c.Request.Context(), userID, courseID, lessonID)
	if err != nil {
		h.log.ErrorErr("toggle lesson completion failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

func (h *ProgressHandler) CompletedLessons(c *gin.Context) {
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

	lessons, err := h.service.CompletedLessons(c.Request.Context(), userID, courseID)
	if err != nil {
		h.log.ErrorErr("completed lessons failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed_lessons": lessons})
}
