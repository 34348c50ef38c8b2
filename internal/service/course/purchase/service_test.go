package purchase

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

type purchaseKey struct {
	courseID uuid.UUID
	userID   uuid.UUID
}

type fakePurchaseRepo struct {
	purchases map[purchaseKey]struct{}
}

func (f *fakePurchaseRepo) Purchase(_ context.Context, courseID, userID uuid.UUID) error {
	key := purchaseKey{courseID, userID}
	if _, ok := f.purchases[key]; ok {
		return app_errors.ErrAlreadyPurchased
	}
	f.purchases[key] = struct{}{}
	return nil
}

func (f *fakePurchaseRepo) PurchasedCourses(_ context.Context, userID uuid.UUID) ([]models.Course, error) {
	var out []models.Course
	for k := range f.purchases {
		if k.userID == userID {
			out = append(out, models.Course{ID: k.courseID})
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) Purchasers(_ context.Context, courseID uuid.UUID) ([]models.User, error) {
	var out []models.User
	for k := range f.purchases {
		if k.courseID == courseID {
			out = append(out, models.User{ID: k.userID})
		}
	}
	return out, nil
}

func newTestService(courseIDs ...uuid.UUID) *Service {
	courses := map[uuid.UUID]*models.Course{}
	for _, id := range courseIDs {
		courses[id] = &models.Course{ID: id, Title: "Go in practice", Type: models.TypePaid, Price: 30}
	}
	return NewService(logger.New("local"),
		&fakeCourseRepo{courses: courses},
		&fakePurchaseRepo{purchases: map[purchaseKey]struct{}{}},
	)
}

func TestPurchase(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	s := newTestService(courseID)

	require.NoError(t, s.Purchase(context.Background(), courseID, userID))

	courses, err := s.PurchasedCourses(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, courseID, courses[0].ID)
}

func TestDoublePurchaseFails(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	s := newTestService(courseID)

	require.NoError(t, s.Purchase(context.Background(), courseID, userID))
	err := s.Purchase(context.Background(), courseID, userID)
	assert.ErrorIs(t, err, app_errors.ErrAlreadyPurchased)
}

func TestPurchaseUnknownCourse(t *testing.T) {
	s := newTestService()

	err := s.Purchase(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)
}

func TestPurchasersIncludesCourseTitle(t *testing.T) {
	courseID := uuid.New()
	s := newTestService(courseID)

	buyers := []uuid.UUID{uuid.New(), uuid.New()}
	for _, b := range buyers {
		require.NoError(t, s.Purchase(context.Background(), courseID, b))
	}

	title, users, err := s.Purchasers(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, "Go in practice", title)
	assert.Len(t, users, 2)
}
