package access

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

type fakePurchaseRepo struct {
	purchased map[uuid.UUID]map[uuid.UUID]struct{}
}

func (f *fakePurchaseRepo) IsPurchased(_ context.Context, courseID, userID uuid.UUID) (bool, error) {
	_, ok := f.purchased[courseID][userID]
	return ok, nil
}

func TestFreeCourseIsAlwaysGranted(t *testing.T) {
	courseID := uuid.New()
	s := NewService(logger.New("local"),
		&fakeCourseRepo{courses: map[uuid.UUID]*models.Course{
			courseID: {ID: courseID, Type: models.TypeFree},
		}},
		&fakePurchaseRepo{purchased: map[uuid.UUID]map[uuid.UUID]struct{}{}},
	)

	result, err := s.CanAccess(context.Background(), uuid.New(), courseID)
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.NotEmpty(t, result.Reason)
}

func TestPaidCourseRequiresPurchase(t *testing.T) {
	courseID := uuid.New()
	buyer := uuid.New()
	stranger := uuid.New()

	s := NewService(logger.New("local"),
		&fakeCourseRepo{courses: map[uuid.UUID]*models.Course{
			courseID: {ID: courseID, Type: models.TypePaid, Price: 25},
		}},
		&fakePurchaseRepo{purchased: map[uuid.UUID]map[uuid.UUID]struct{}{
			courseID: {buyer: {}},
		}},
	)

	result, err := s.CanAccess(context.Background(), buyer, courseID)
	require.NoError(t, err)
	assert.True(t, result.Granted)

	result, err = s.CanAccess(context.Background(), stranger, courseID)
	require.NoError(t, err)
	assert.False(t, result.Granted)
	assert.NotEmpty(t, result.Reason)
}

func TestMissingCourseIsNotFoundNotDenied(t *testing.T) {
	s := NewService(logger.New("local"),
		&fakeCourseRepo{courses: map[uuid.UUID]*models.Course{}},
		&fakePurchaseRepo{purchased: map[uuid.UUID]map[uuid.UUID]struct{}{}},
	)

	_, err := s.CanAccess(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)
}
