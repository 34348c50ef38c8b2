package management

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

const maxImageSizeBytes = 10 << 20

type courseRepo interface {
	NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	AddImage(ctx context.Context, courseID uuid.UUID, objectKey string) error
}

type categoryRepo interface {
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
}

type lessonRepo interface {
	AddLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error)
	LessonByID(ctx context.Context, courseID, lessonID uuid.UUID) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, lesson models.Lesson) error
	DeleteLesson(ctx context.Context, courseID, lessonID uuid.UUID) error
}

type quizRepo interface {
	AddQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error)
	QuizByID(ctx context.Context, courseID, quizID uuid.UUID) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz models.Quiz) error
	DeleteQuiz(ctx context.Context, courseID, quizID uuid.UUID) error
}

type searchRepo interface {
	Index(ctx context.Context, course models.Course) error
	Update(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageRepo interface {
	UploadImage(ctx context.Context, courseID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	GetImageURL(ctx context.Context, objectKey string) (string, error)
	DeleteImage(ctx context.Context, objectKey string) error
}

type Service struct {
	log          logger.Log
	courseRepo   courseRepo
	categoryRepo categoryRepo
	lessonRepo   lessonRepo
	quizRepo     quizRepo
	searchRepo   searchRepo
	imageRepo    imageRepo
}

func NewService(log logger.Log, c courseRepo, cat categoryRepo, l lessonRepo,
	q quizRepo, s searchRepo, i imageRepo,
) *Service {
	return &Service{
		log:          log,
		courseRepo:   c,
		categoryRepo: cat,
		lessonRepo:   l,
		quizRepo:     q,
		searchRepo:   s,
		imageRepo:    i,
	}
}

// CreateCourse resolves the category by name and persists the course. A Paid
// course must carry a positive price; a Free course always stores price 0.
func (s *Service) CreateCourse(ctx context.Context, course models.Course, categoryName string) (uuid.UUID, error) {
	switch course.Type {
	case models.TypePaid:
		if course.Price <= 0 {
			return uuid.Nil, app_errors.ErrInvalidPrice
		}
	case models.TypeFree:
		course.Price = 0
	default:
		return uuid.Nil, app_errors.ErrInvalidCourseType
	}

	category, err := s.categoryRepo.CategoryByName(ctx, categoryName)
	if err != nil {
		return uuid.Nil, err
	}
	course.CategoryID = category.ID

	id, err := s.courseRepo.NewCourse(ctx, &course)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.searchRepo.Index(ctx, course); err != nil {
		s.log.ErrorErr("failed to index course", err, "course_id", id.String())
	}
	return id, nil
}

type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *float64
}

func (s *Service) UpdateCourse(ctx context.Context, courseID uuid.UUID, update CourseUpdate) (*models.Course, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Price != nil {
		if course.Type == models.TypePaid {
			if *update.Price <= 0 {
				return nil, app_errors.ErrInvalidPrice
			}
			course.Price = *update.Price
		}
		// a Free course keeps price 0 regardless of the requested value
	}

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	if err := s.searchRepo.Update(ctx, *course); err != nil {
		s.log.ErrorErr("failed to update course index", err, "course_id", courseID.String())
	}
	return course, nil
}

// DeleteCourse removes the course row and best-effort cleans up its search
// index entry and stored images.
func (s *Service) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.searchRepo.Delete(ctx, courseID); err != nil {
		s.log.ErrorErr("failed to delete course from index", err, "course_id", courseID.String())
	}
	for _, key := range course.ImageObjectKeys {
		if err := s.imageRepo.DeleteImage(ctx, key); err != nil {
			s.log.ErrorErr("failed to delete course image", err, "object_key", key)
		}
	}
	return nil
}

func (s *Service) UploadCourseImage(
	ctx context.Context,
	courseID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return "", err
	}

	if size > maxImageSizeBytes {
		return "", app_errors.ErrFileSize
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", app_errors.ErrNotImage
	}

	objectKey, err := s.imageRepo.UploadImage(ctx, courseID, filename, reader, size, contentType)
	if err != nil {
		s.log.ErrorErr("failed to upload image to storage", err)
		return "", err
	}

	if err := s.courseRepo.AddImage(ctx, courseID, objectKey); err != nil {
		s.log.ErrorErr("failed to save image key to db", err)
		return "", err
	}

	url, err := s.imageRepo.GetImageURL(ctx, objectKey)
	if err != nil {
		s.log.ErrorErr("failed to get presigned URL", err)
		return "", err
	}
	return url, nil
}

func (s *Service) AddLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error) {
	if _, err := s.courseRepo.CourseByID(ctx, lesson.CourseID); err != nil {
		return nil, err
	}
	return s.lessonRepo.AddLesson(ctx, lesson)
}

type LessonUpdate struct {
	Title          *string
	VideoObjectKey *string
	Content        *string
	LessonOrder    *int
}

func (s *Service) UpdateLesson(ctx context.Context, courseID, lessonID uuid.UUID, update LessonUpdate) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.LessonByID(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		lesson.Title = *update.Title
	}
	if update.VideoObjectKey != nil {
		lesson.VideoObjectKey = *update.VideoObjectKey
	}
	if update.Content != nil {
		lesson.Content = *update.Content
	}
	if update.LessonOrder != nil {
		lesson.LessonOrder = *update.LessonOrder
	}

	if err := s.lessonRepo.UpdateLesson(ctx, *lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *Service) DeleteLesson(ctx context.Context, courseID, lessonID uuid.UUID) error {
	return s.lessonRepo.DeleteLesson(ctx, courseID, lessonID)
}

// AddQuiz validates the whole quiz before anything touches the store;
// a failing question rejects the entire creation.
func (s *Service) AddQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error) {
	if _, err := s.courseRepo.CourseByID(ctx, quiz.CourseID); err != nil {
		return nil, err
	}
	if err := ValidateQuiz(quiz); err != nil {
		return nil, err
	}
	return s.quizRepo.AddQuiz(ctx, quiz)
}

// UpdateQuiz replaces the quiz content. Question ids are referenced by
// recorded quiz attempts, so they must survive the update: ids missing
// from the payload are carried over from the stored question at the same
// position, and only genuinely new questions get fresh ids.
func (s *Service) UpdateQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error) {
	existing, err := s.quizRepo.QuizByID(ctx, quiz.CourseID, quiz.ID)
	if err != nil {
		return nil, err
	}
	quiz.CreatedAt = existing.CreatedAt
	for i := range quiz.Questions {
		if quiz.Questions[i].ID != uuid.Nil {
			continue
		}
		if i < len(existing.Questions) {
			quiz.Questions[i].ID = existing.Questions[i].ID
		} else {
			quiz.Questions[i].ID = uuid.New()
		}
	}
	if err := ValidateQuiz(quiz); err != nil {
		return nil, err
	}
	if err := s.quizRepo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *Service) DeleteQuiz(ctx context.Context, courseID, quizID uuid.UUID) error {
	return s.quizRepo.DeleteQuiz(ctx, courseID, quizID)
}
