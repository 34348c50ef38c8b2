package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

type categoryRepo interface {
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type Service struct {
	log          logger.Log
	categoryRepo categoryRepo
}

func NewService(log logger.Log, repo categoryRepo) *Service {
	return &Service{log: log, categoryRepo: repo}
}

func (s *Service) CreateCategory(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)

	if _, err := s.categoryRepo.CategoryByName(ctx, name); err == nil {
		return uuid.Nil, app_errors.ErrCategoryExists
	} else if !errors.Is(err, app_errors.ErrCategoryNotFound) {
		return uuid.Nil, err
	}

	created, err := s.categoryRepo.CreateCategory(ctx, models.Category{ID: uuid.New(), Name: name})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}
