package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type member struct {
	courseID uuid.UUID
	userID   uuid.UUID
}

type fakeEngagementRepo struct {
	sets map[models.EngagementKind]map[member]struct{}
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		sets: map[models.EngagementKind]map[member]struct{}{
			models.EngagementLike:     {},
			models.EngagementFavorite: {},
		},
	}
}

func (f *fakeEngagementRepo) Contains(_ context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (bool, error) {
	_, ok := f.sets[kind][member{courseID, userID}]
	return ok, nil
}

func (f *fakeEngagementRepo) Add(_ context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error {
	f.sets[kind][member{courseID, userID}] = struct{}{}
	return nil
}

func (f *fakeEngagementRepo) Remove(_ context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error {
	delete(f.sets[kind], member{courseID, userID})
	return nil
}

func (f *fakeEngagementRepo) Recount(_ context.Context, kind models.EngagementKind, courseID uuid.UUID) (int, error) {
	count := 0
	for m := range f.sets[kind] {
		if m.courseID == courseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) CoursesByUser(_ context.Context, kind models.EngagementKind, userID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	for m := range f.sets[kind] {
		if m.userID == userID {
			courses = append(courses, models.Course{ID: m.courseID})
		}
	}
	return courses, nil
}

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

func newService(courseIDs ...uuid.UUID) (*Service, *fakeEngagementRepo) {
	courses := map[uuid.UUID]*models.Course{}
	for _, id := range courseIDs {
		courses[id] = &models.Course{ID: id, Type: models.TypeFree}
	}
	repo := newFakeEngagementRepo()
	return NewService(logger.New("local"), &fakeCourseRepo{courses: courses}, repo), repo
}

func TestToggleAddsMember(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	s, _ := newService(courseID)

	added, count, err := s.Toggle(context.Background(), models.EngagementLike, courseID, userID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, count)
}

func TestToggleIsIdempotent(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	s, repo := newService(courseID)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, count, err := s.Toggle(ctx, models.EngagementLike, courseID, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}

	added, _, err := s.Toggle(ctx, models.EngagementLike, courseID, userID)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, repo.sets[models.EngagementLike], 1)
}

func TestCountMatchesSetSize(t *testing.T) {
	courseID := uuid.New()
	s, _ := newService(courseID)
	ctx := context.Background()

	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, u := range users {
		_, _, err := s.Toggle(ctx, models.EngagementLike, courseID, u)
		require.NoError(t, err)
	}

	count, err := s.Untoggle(ctx, models.EngagementLike, courseID, users[0])
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// removing an absent member is safe and leaves the count converged
	count, err = s.Untoggle(ctx, models.EngagementLike, courseID, users[0])
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLikeAndFavoriteSetsAreDisjoint(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	s, _ := newService(courseID)
	ctx := context.Background()

	_, likeCount, err := s.Toggle(ctx, models.EngagementLike, courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, likeCount)

	favCount, err := s.Untoggle(ctx, models.EngagementFavorite, courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, favCount)

	_, favCount, err = s.Toggle(ctx, models.EngagementFavorite, courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, favCount)

	likeCount, err = s.Untoggle(ctx, models.EngagementLike, courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, likeCount)

	favCount, err = s.Untoggle(ctx, models.EngagementFavorite, courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, favCount)
}

func TestToggleUnknownCourse(t *testing.T) {
	s, _ := newService()

	_, _, err := s.Toggle(context.Background(), models.EngagementLike, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)

	_, err = s.Untoggle(context.Background(), models.EngagementFavorite, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)
}
