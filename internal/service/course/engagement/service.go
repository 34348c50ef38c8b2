package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type engagementRepo interface {
	Contains(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (bool, error)
	Add(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error
	Remove(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error
	Recount(ctx context.Context, kind models.EngagementKind, courseID uuid.UUID) (int, error)
	CoursesByUser(ctx context.Context, kind models.EngagementKind, userID uuid.UUID) ([]models.Course, error)
}

// Service implements both like and favorite toggles with one code path;
// the kind parameter picks the backing set. Keeping a single implementation
// guarantees the two sets cannot diverge in behavior.
type Service struct {
	log        logger.Log
	courseRepo courseRepo
	engRepo    engagementRepo
}

func NewService(l logger.Log, c courseRepo, e engagementRepo) *Service {
	return &Service{
		log:        l,
		courseRepo: c,
		engRepo:    e,
	}
}

// Toggle adds the user to the course's engagement set. Adding is idempotent:
// if the user is already a member nothing changes and added is false. The
// returned count is always recomputed from the set size.
func (s *Service) Toggle(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (added bool, count int, err error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return false, 0, err
	}

	present, err := s.engRepo.Contains(ctx, kind, courseID, userID)
	if err != nil {
		return false, 0, err
	}
	if !present {
		if err := s.engRepo.Add(ctx, kind, courseID, userID); err != nil {
			return false, 0, err
		}
	}

	count, err = s.engRepo.Recount(ctx, kind, courseID)
	if err != nil {
		return false, 0, err
	}
	return !present, count, nil
}

// Untoggle removes the user from the set. Removing an absent member is not
// an error; the count still converges to the set size.
func (s *Service) Untoggle(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (count int, err error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return 0, err
	}

	if err := s.engRepo.Remove(ctx, kind, courseID, userID); err != nil {
		return 0, err
	}

	return s.engRepo.Recount(ctx, kind, courseID)
}

func (s *Service) CoursesByUser(ctx context.Context, kind models.EngagementKind, userID uuid.UUID) ([]models.Course, error) {
	return s.engRepo.CoursesByUser(ctx, kind, userID)
}
