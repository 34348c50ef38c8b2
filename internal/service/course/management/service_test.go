package management

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type fakeCourseRepo struct {
	courses map[uuid.UUID]*models.Course
	created []*models.Course
}

func (f *fakeCourseRepo) NewCourse(_ context.Context, course *models.Course) (uuid.UUID, error) {
	course.ID = uuid.New()
	f.created = append(f.created, course)
	f.courses[course.ID] = course
	return course.ID, nil
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, course *models.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, id uuid.UUID) error {
	if _, ok := f.courses[id]; !ok {
		return app_errors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) AddImage(_ context.Context, courseID uuid.UUID, objectKey string) error {
	course, ok := f.courses[courseID]
	if !ok {
		return app_errors.ErrCourseNotFound
	}
	course.ImageObjectKeys = append(course.ImageObjectKeys, objectKey)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func (f *fakeCategoryRepo) CategoryByName(_ context.Context, name string) (*models.Category, error) {
	category, ok := f.categories[name]
	if !ok {
		return nil, app_errors.ErrCategoryNotFound
	}
	return category, nil
}

type fakeLessonRepo struct{}

func (f *fakeLessonRepo) AddLesson(_ context.Context, lesson models.Lesson) (*models.Lesson, error) {
	lesson.ID = uuid.New()
	return &lesson, nil
}

func (f *fakeLessonRepo) LessonByID(_ context.Context, _, _ uuid.UUID) (*models.Lesson, error) {
	return nil, app_errors.ErrLessonNotFound
}

func (f *fakeLessonRepo) UpdateLesson(_ context.Context, _ models.Lesson) error { return nil }

func (f *fakeLessonRepo) DeleteLesson(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeQuizRepo struct {
	added   []models.Quiz
	quizzes map[uuid.UUID]models.Quiz
	updated *models.Quiz
}

func (f *fakeQuizRepo) AddQuiz(_ context.Context, quiz models.Quiz) (*models.Quiz, error) {
	quiz.ID = uuid.New()
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == uuid.Nil {
			quiz.Questions[i].ID = uuid.New()
		}
	}
	f.added = append(f.added, quiz)
	if f.quizzes == nil {
		f.quizzes = map[uuid.UUID]models.Quiz{}
	}
	f.quizzes[quiz.ID] = quiz
	return &quiz, nil
}

func (f *fakeQuizRepo) QuizByID(_ context.Context, courseID, quizID uuid.UUID) (*models.Quiz, error) {
	quiz, ok := f.quizzes[quizID]
	if !ok || quiz.CourseID != courseID {
		return nil, app_errors.ErrQuizNotFound
	}
	return &quiz, nil
}

func (f *fakeQuizRepo) UpdateQuiz(_ context.Context, quiz models.Quiz) error {
	f.updated = &quiz
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizRepo) DeleteQuiz(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeSearchRepo struct{}

func (f *fakeSearchRepo) Index(_ context.Context, _ models.Course) error  { return nil }
func (f *fakeSearchRepo) Update(_ context.Context, _ models.Course) error { return nil }
func (f *fakeSearchRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }

type fakeImageRepo struct{}

func (f *fakeImageRepo) UploadImage(_ context.Context, courseID uuid.UUID, filename string, _ io.Reader, _ int64, _ string) (string, error) {
	return "courses/" + courseID.String() + "/" + filename, nil
}

func (f *fakeImageRepo) GetImageURL(_ context.Context, objectKey string) (string, error) {
	return "https://storage.local/" + objectKey, nil
}

func (f *fakeImageRepo) DeleteImage(_ context.Context, _ string) error { return nil }

type fixture struct {
	service    *Service
	courseRepo *fakeCourseRepo
	quizRepo   *fakeQuizRepo
}

func newFixture(categoryNames ...string) fixture {
	categories := map[string]*models.Category{}
	for _, name := range categoryNames {
		categories[name] = &models.Category{ID: uuid.New(), Name: name}
	}
	courseRepo := &fakeCourseRepo{courses: map[uuid.UUID]*models.Course{}}
	quizRepo := &fakeQuizRepo{}
	svc := NewService(
		logger.New("local"),
		courseRepo,
		&fakeCategoryRepo{categories: categories},
		&fakeLessonRepo{},
		quizRepo,
		&fakeSearchRepo{},
		&fakeImageRepo{},
	)
	return fixture{service: svc, courseRepo: courseRepo, quizRepo: quizRepo}
}

func TestCreateCoursePaidRequiresPositivePrice(t *testing.T) {
	f := newFixture("Programming")

	_, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypePaid, Price: 0,
	}, "Programming")
	assert.ErrorIs(t, err, app_errors.ErrInvalidPrice)

	_, err = f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypePaid, Price: -5,
	}, "Programming")
	assert.ErrorIs(t, err, app_errors.ErrInvalidPrice)
	assert.Empty(t, f.courseRepo.created)
}

func TestCreateCourseFreeForcesZeroPrice(t *testing.T) {
	f := newFixture("Programming")

	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree, Price: 99,
	}, "Programming")
	require.NoError(t, err)

	course, err := f.courseRepo.CourseByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, course.Price)
}

func TestCreateCourseUnknownType(t *testing.T) {
	f := newFixture("Programming")

	_, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: "Premium", Price: 10,
	}, "Programming")
	assert.ErrorIs(t, err, app_errors.ErrInvalidCourseType)
}

func TestCreateCourseUnknownCategory(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Cooking")
	assert.ErrorIs(t, err, app_errors.ErrCategoryNotFound)
	assert.Empty(t, f.courseRepo.created)
}

func TestUpdateCourseFreeKeepsZeroPrice(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	price := 50.0
	course, err := f.service.UpdateCourse(context.Background(), id, CourseUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 0.0, course.Price)
}

func TestAddQuizRejectsInvalidBeforePersisting(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	_, err = f.service.AddQuiz(context.Background(), models.Quiz{
		CourseID: id,
		Title:    "Broken",
		Questions: []models.Question{
			{Text: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "c"},
		},
	})
	assert.ErrorIs(t, err, app_errors.ErrQuizInvalid)
	assert.Empty(t, f.quizRepo.added)
}

func TestAddQuizPersistsValid(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	quiz, err := f.service.AddQuiz(context.Background(), models.Quiz{
		CourseID: id,
		Title:    "Basics",
		Questions: []models.Question{
			{Text: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, quiz.ID)
	assert.Len(t, f.quizRepo.added, 1)
}

func TestUpdateQuizKeepsQuestionIDs(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	quiz, err := f.service.AddQuiz(context.Background(), models.Quiz{
		CourseID: id,
		Title:    "Basics",
		Questions: []models.Question{
			{Text: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "a"},
			{Text: "Pick two", Options: []string{"c", "d"}, CorrectAnswer: "d"},
		},
	})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)
	firstID, secondID := quiz.Questions[0].ID, quiz.Questions[1].ID
	require.NotEqual(t, uuid.Nil, firstID)

	// Clients resubmit the whole quiz without question ids, the way the
	// update endpoint shapes it. Stored ids must survive, because recorded
	// attempts reference their questions by id.
	updated, err := f.service.UpdateQuiz(context.Background(), models.Quiz{
		ID:       quiz.ID,
		CourseID: id,
		Title:    "Basics v2",
		Questions: []models.Question{
			{Text: "Pick one again", Options: []string{"a", "b"}, CorrectAnswer: "b"},
			{Text: "Pick two again", Options: []string{"c", "d"}, CorrectAnswer: "c"},
			{Text: "Brand new", Options: []string{"e", "f"}, CorrectAnswer: "e"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, f.quizRepo.updated)
	require.Len(t, f.quizRepo.updated.Questions, 3)
	assert.Equal(t, firstID, f.quizRepo.updated.Questions[0].ID)
	assert.Equal(t, secondID, f.quizRepo.updated.Questions[1].ID)
	assert.NotEqual(t, uuid.Nil, f.quizRepo.updated.Questions[2].ID)
	assert.NotEqual(t, firstID, f.quizRepo.updated.Questions[2].ID)
	assert.Equal(t, firstID, updated.Questions[0].ID)
}

func TestUploadCourseImageRejectsNonImage(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	_, err = f.service.UploadCourseImage(context.Background(), id, "notes.txt", strings.NewReader("hello"), 5, "text/plain")
	assert.ErrorIs(t, err, app_errors.ErrNotImage)
}

func TestUploadCourseImageRejectsOversized(t *testing.T) {
	f := newFixture("Programming")
	id, err := f.service.CreateCourse(context.Background(), models.Course{
		Title: "Go", Type: models.TypeFree,
	}, "Programming")
	require.NoError(t, err)

	_, err = f.service.UploadCourseImage(context.Background(), id, "big.png", strings.NewReader(""), maxImageSizeBytes+1, "image/png")
	assert.ErrorIs(t, err, app_errors.ErrFileSize)
}
