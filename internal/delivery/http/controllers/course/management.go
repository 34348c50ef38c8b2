package course

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/middleware"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/management"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, course models.Course, categoryName string) (uuid.UUID, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, update management.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
	UploadCourseImage(ctx context.Context, courseID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	AddLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, courseID, lessonID uuid.UUID, update management.LessonUpdate) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, courseID, lessonID uuid.UUID) error
	AddQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, courseID, quizID uuid.UUID) error
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

type newCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price"`
	Author      string  `json:"author"`
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var input newCourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creatorID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Price:       input.Price,
		Author:      input.Author,
		CreatedBy:   creatorID,
	}

	id, err := h.service.CreateCourse(c.Request.Context(), course, input.Category)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrInvalidPrice), errors.Is(err, app_errors.ErrInvalidCourseType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("create course failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"course_id": id})
}

type updateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var input updateCourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), courseID, management.CourseUpdate{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("update course failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *ManagementHandler) DeleteCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), courseID); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("delete course failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ManagementHandler) UploadCourseImage(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadCourseImage(
		c.Request.Context(),
		courseID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrFileSize), errors.Is(err, app_errors.ErrNotImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("image upload failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

type newLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Video       string `json:"video"`
	Content     string `json:"content"`
	LessonOrder int    `json:"lesson_order"`
}

func (h *ManagementHandler) AddLesson(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var input newLessonRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.service.AddLesson(c.Request.Context(), models.Lesson{
		CourseID:       courseID,
		Title:          input.Title,
		VideoObjectKey: input.Video,
		Content:        input.Content,
		LessonOrder:    input.LessonOrder,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("add lesson failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

type updateLessonRequest struct {
	Title       *string `json:"title"`
	Video       *string `json:"video"`
	Content     *string `json:"content"`
	LessonOrder *int    `json:"lesson_order"`
}

func (h *ManagementHandler) UpdateLesson(c *gin.Context) {
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

	var input updateLessonRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.service.UpdateLesson(c.Request.Context(), courseID, lessonID, management.LessonUpdate{
		Title:          input.Title,
		VideoObjectKey: input.Video,
		Content:        input.Content,
		LessonOrder:    input.LessonOrder,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("update lesson failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *ManagementHandler) DeleteLesson(c *gin.Context) {
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

	if err := h.service.DeleteLesson(c.Request.Context(), courseID, lessonID); err != nil {
		if errors.Is(err, app_errors.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("delete lesson failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type quizQuestionRequest struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
}

type quizRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []quizQuestionRequest `json:"questions"`
	QuizOrder   int                   `json:"quiz_order"`
}

func (r quizRequest) toModel(courseID uuid.UUID) models.Quiz {
	quiz := models.Quiz{
		CourseID:    courseID,
		Title:       r.Title,
		Description: r.Description,
		QuizOrder:   r.QuizOrder,
	}
	for _, q := range r.Questions {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:            q.ID,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return quiz
}

func (h *ManagementHandler) AddQuiz(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var input quizRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.service.AddQuiz(c.Request.Context(), input.toModel(courseID))
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrQuizInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("add quiz failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *ManagementHandler) UpdateQuiz(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz_id"})
		return
	}

	var input quizRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quizModel := input.toModel(courseID)
	quizModel.ID = quizID

	quiz, err := h.service.UpdateQuiz(c.Request.Context(), quizModel)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrQuizInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("update quiz failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *ManagementHandler) DeleteQuiz(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz_id"})
		return
	}

	if err := h.service.DeleteQuiz(c.Request.Context(), courseID, quizID); err != nil {
		if errors.Is(err, app_errors.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("delete quiz failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
