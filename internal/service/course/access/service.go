package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type purchaseRepo interface {
	IsPurchased(ctx context.Context, courseID, userID uuid.UUID) (bool, error)
}

// Access is the result of a gate check. Granted=false with a nil error is a
// normal outcome (the caller maps it to 403); a missing course surfaces as
// ErrCourseNotFound and is never reported as a denial.
type Access struct {
	Granted bool   `json:"access"`
	Reason  string `json:"reason"`
}

type Service struct {
	log          logger.Log
	courseRepo   courseRepo
	purchaseRepo purchaseRepo
}

func NewService(l logger.Log, c courseRepo, p purchaseRepo) *Service {
	return &Service{
		log:          l,
		courseRepo:   c,
		purchaseRepo: p,
	}
}

func (s *Service) CanAccess(ctx context.Context, userID, courseID uuid.UUID) (Access, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return Access{}, err
	}

	if course.Type == models.TypeFree {
		return Access{Granted: true, Reason: "free course, access granted"}, nil
	}

	purchased, err := s.purchaseRepo.IsPurchased(ctx, courseID, userID)
	if err != nil {
		return Access{}, err
	}
	if purchased {
		return Access{Granted: true, Reason: "access granted, course purchased"}, nil
	}
	return Access{Granted: false, Reason: "course must be purchased to access it"}, nil
}
