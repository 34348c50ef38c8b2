package purchase

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
	Purchase(ctx context.Context, courseID, userID uuid.UUID) error
	PurchasedCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error)
	Purchasers(ctx context.Context, courseID uuid.UUID) ([]models.User, error)
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

func (s *Service) Purchase(ctx context.Context, courseID, userID uuid.UUID) error {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return err
	}
	return s.purchaseRepo.Purchase(ctx, courseID, userID)
}

func (s *Service) PurchasedCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error) {
	return s.purchaseRepo.PurchasedCourses(ctx, userID)
}

// Purchasers returns the users who bought a course, with the course title
// for the admin listing.
func (s *Service) Purchasers(ctx context.Context, courseID uuid.UUID) (string, []models.User, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return "", nil, err
	}
	users, err := s.purchaseRepo.Purchasers(ctx, courseID)
	if err != nil {
		return "", nil, err
	}
	return course.Title, users, nil
}
