package query

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/access"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type fakeCourseRepo struct {
	courses map[uuid.UUID]*models.Course
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) ListCourses(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, nil
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) CategoryByID(_ context.Context, _ uuid.UUID) (*models.Category, error) {
	return &models.Category{Name: "Programming"}, nil
}

type fakeLessonRepo struct {
	lessons map[uuid.UUID][]models.Lesson
}

func (f *fakeLessonRepo) LessonsByCourse(_ context.Context, courseID uuid.UUID) ([]models.Lesson, error) {
	return f.lessons[courseID], nil
}

type fakeQuizRepo struct{}

func (f *fakeQuizRepo) QuizzesByCourse(_ context.Context, _ uuid.UUID) ([]models.Quiz, error) {
	return nil, nil
}

type fakeSearchRepo struct{}

func (f *fakeSearchRepo) Search(_ context.Context, _ string, _ int) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeSearchRepo) Count(_ context.Context, _ string) (int, error) { return 0, nil }

type fakeImageRepo struct{}

func (f *fakeImageRepo) GetImageURL(_ context.Context, objectKey string) (string, error) {
	return "https://storage.local/" + objectKey, nil
}

type fakeAccessChecker struct {
	granted map[uuid.UUID]bool
	courses map[uuid.UUID]struct{}
}

func (f *fakeAccessChecker) CanAccess(_ context.Context, _, courseID uuid.UUID) (access.Access, error) {
	if _, ok := f.courses[courseID]; !ok {
		return access.Access{}, app_errors.ErrCourseNotFound
	}
	if f.granted[courseID] {
		return access.Access{Granted: true, Reason: "free course, access granted"}, nil
	}
	return access.Access{Granted: false, Reason: "course must be purchased to access it"}, nil
}

func newTestService(courses map[uuid.UUID]*models.Course, granted map[uuid.UUID]bool) *Service {
	known := map[uuid.UUID]struct{}{}
	lessons := map[uuid.UUID][]models.Lesson{}
	for id := range courses {
		known[id] = struct{}{}
		lessons[id] = []models.Lesson{{ID: uuid.New(), CourseID: id, Title: "Intro"}}
	}
	return NewService(
		logger.New("local"),
		&fakeCourseRepo{courses: courses},
		&fakeCategoryRepo{},
		&fakeLessonRepo{lessons: lessons},
		&fakeQuizRepo{},
		&fakeSearchRepo{},
		&fakeImageRepo{},
		&fakeAccessChecker{granted: granted, courses: known},
	)
}

func TestLessonsForUserGranted(t *testing.T) {
	courseID := uuid.New()
	s := newTestService(
		map[uuid.UUID]*models.Course{courseID: {ID: courseID, Type: models.TypeFree}},
		map[uuid.UUID]bool{courseID: true},
	)

	lessons, err := s.LessonsForUser(context.Background(), uuid.New(), courseID)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "Intro", lessons[0].Title)
}

func TestLessonsForUserDenied(t *testing.T) {
	courseID := uuid.New()
	s := newTestService(
		map[uuid.UUID]*models.Course{courseID: {ID: courseID, Type: models.TypePaid, Price: 10}},
		map[uuid.UUID]bool{courseID: false},
	)

	_, err := s.LessonsForUser(context.Background(), uuid.New(), courseID)
	assert.ErrorIs(t, err, app_errors.ErrAccessDenied)
}

func TestLessonsForUserMissingCourse(t *testing.T) {
	s := newTestService(map[uuid.UUID]*models.Course{}, map[uuid.UUID]bool{})

	_, err := s.LessonsForUser(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)
}

func TestQuizzesForUserDenied(t *testing.T) {
	courseID := uuid.New()
	s := newTestService(
		map[uuid.UUID]*models.Course{courseID: {ID: courseID, Type: models.TypePaid, Price: 10}},
		map[uuid.UUID]bool{courseID: false},
	)

	_, err := s.QuizzesForUser(context.Background(), uuid.New(), courseID)
	assert.ErrorIs(t, err, app_errors.ErrAccessDenied)
}

func TestCoursePreviewFields(t *testing.T) {
	courseID := uuid.New()
	s := newTestService(
		map[uuid.UUID]*models.Course{courseID: {
			ID:              courseID,
			Title:           "Go",
			Type:            models.TypePaid,
			Price:           10,
			ImageObjectKeys: []string{"courses/x/logo.png"},
			Likes:           4,
		}},
		map[uuid.UUID]bool{},
	)

	preview, err := s.CourseByID(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, "Go", preview.Title)
	assert.Equal(t, "Programming", preview.Category)
	assert.Equal(t, 4, preview.Likes)
	require.Len(t, preview.ImageURLs, 1)
	assert.Equal(t, "https://storage.local/courses/x/logo.png", preview.ImageURLs[0])
}
