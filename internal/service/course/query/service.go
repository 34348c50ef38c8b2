package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/access"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type categoryRepo interface {
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type lessonRepo interface {
	LessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Lesson, error)
}

type quizRepo interface {
	QuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Quiz, error)
}

type searchRepo interface {
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
	Count(ctx context.Context, query string) (int, error)
}

type imageRepo interface {
	GetImageURL(ctx context.Context, objectKey string) (string, error)
}

type accessChecker interface {
	CanAccess(ctx context.Context, userID, courseID uuid.UUID) (access.Access, error)
}

type Service struct {
	log          logger.Log
	courseRepo   courseRepo
	categoryRepo categoryRepo
	lessonRepo   lessonRepo
	quizRepo     quizRepo
	searchRepo   searchRepo
	imageRepo    imageRepo
	access       accessChecker
}

func NewService(log logger.Log, c courseRepo, cat categoryRepo, l lessonRepo,
	q quizRepo, s searchRepo, i imageRepo, a accessChecker,
) *Service {
	return &Service{
		log:          log,
		courseRepo:   c,
		categoryRepo: cat,
		lessonRepo:   l,
		quizRepo:     q,
		searchRepo:   s,
		imageRepo:    i,
		access:       a,
	}
}

func (s *Service) Courses(ctx context.Context) ([]models.CoursePreview, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	previews := make([]models.CoursePreview, 0, len(courses))
	for _, c := range courses {
		previews = append(previews, s.preview(ctx, c))
	}
	return previews, nil
}

func (s *Service) CourseByID(ctx context.Context, id uuid.UUID) (*models.CoursePreview, error) {
	course, err := s.courseRepo.CourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	preview := s.preview(ctx, *course)
	return &preview, nil
}

func (s *Service) SearchCourses(ctx context.Context, query string, count, offset int) ([]models.CoursePreview, int, error) {
	ids, err := s.searchRepo.Search(ctx, query, count+offset)
	if err != nil {
		return nil, 0, fmt.Errorf("course search failed: %w", err)
	}

	if len(ids) == 0 {
		return []models.CoursePreview{}, 0, nil
	}

	total, err := s.searchRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("course search count failed: %w", err)
	}

	if len(ids) > offset {
		ids = ids[offset:]
	} else {
		ids = nil
	}
	if len(ids) > count {
		ids = ids[:count]
	}

	previews := make([]models.CoursePreview, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.CourseByID(ctx, id)
		if err != nil {
			s.log.ErrorErr("search: failed to load course by id", err, "course_id", id.String())
			continue
		}
		previews = append(previews, s.preview(ctx, *course))
	}
	return previews, total, nil
}

// LessonsForUser returns the course's lessons once the access gate grants.
// A denial surfaces as ErrAccessDenied so callers can route to a purchase
// flow instead of showing an empty list.
func (s *Service) LessonsForUser(ctx context.Context, userID, courseID uuid.UUID) ([]models.Lesson, error) {
	res, err := s.access.CanAccess(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !res.Granted {
		return nil, app_errors.ErrAccessDenied
	}
	return s.lessonRepo.LessonsByCourse(ctx, courseID)
}

func (s *Service) QuizzesForUser(ctx context.Context, userID, courseID uuid.UUID) ([]models.Quiz, error) {
	res, err := s.access.CanAccess(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !res.Granted {
		return nil, app_errors.ErrAccessDenied
	}
	return s.quizRepo.QuizzesByCourse(ctx, courseID)
}

func (s *Service) preview(ctx context.Context, course models.Course) models.CoursePreview {
	var categoryName string
	category, err := s.categoryRepo.CategoryByID(ctx, course.CategoryID)
	if err != nil {
		s.log.ErrorErr("preview: failed to get category", err, "course_id", course.ID.String())
	} else {
		categoryName = category.Name
	}

	urls := make([]string, 0, len(course.ImageObjectKeys))
	for _, key := range course.ImageObjectKeys {
		u, err := s.imageRepo.GetImageURL(ctx, key)
		if err != nil {
			s.log.ErrorErr("preview: failed to get image URL", err)
			continue
		}
		urls = append(urls, u)
	}

	return models.CoursePreview{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Category:    categoryName,
		Type:        course.Type,
		Price:       course.Price,
		ImageURLs:   urls,
		Likes:       course.Likes,
		Favorites:   course.Favorites,
	}
}
