package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type progressRepo interface {
	InsertAttempt(ctx context.Context, attempt models.QuizAttempt) (uuid.UUID, error)
	AttemptsByUser(ctx context.Context, userID uuid.UUID) ([]models.QuizAttempt, error)
	HasCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) (bool, error)
	AddCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) error
	RemoveCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) error
	CompletedLessons(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type userRepo interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Service struct {
	log          logger.Log
	progressRepo progressRepo
	userRepo     userRepo
}

func NewService(log logger.Log, p progressRepo, u userRepo) *Service {
	return &Service{log: log, progressRepo: p, userRepo: u}
}

// RecordQuizAttempt appends a new attempt for the user. Attempts are never
// updated in place, so retaking a quiz keeps the full history.
func (s *Service) RecordQuizAttempt(ctx context.Context, attempt models.QuizAttempt) (uuid.UUID, error) {
	if _, err := s.userRepo.UserByID(ctx, attempt.UserID); err != nil {
		return uuid.Nil, err
	}
	return s.progressRepo.InsertAttempt(ctx, attempt)
}

func (s *Service) QuizProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizAttempt, error) {
	if _, err := s.userRepo.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.progressRepo.AttemptsByUser(ctx, userID)
}

// ToggleLessonCompletion flips the lesson's membership in the user's
// completed set and reports the new state. The lesson id is treated as an
// opaque key, stale ids from removed lessons simply toggle a dormant entry.
func (s *Service) ToggleLessonCompletion(ctx context.Context, userID, courseID, lessonID uuid.UUID) (bool, error) {
	done, err := s.progressRepo.HasCompleted(ctx, userID, courseID, lessonID)
	if err != nil {
		return false, err
	}

	if done {
		if err := s.progressRepo.RemoveCompleted(ctx, userID, courseID, lessonID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.progressRepo.AddCompleted(ctx, userID, courseID, lessonID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) CompletedLessons(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	return s.progressRepo.CompletedLessons(ctx, userID, courseID)
}
