package category

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

type fakeCategoryRepo struct {
	byName map[string]*models.Category
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category models.Category) (*models.Category, error) {
	f.byName[category.Name] = &category
	return &category, nil
}

func (f *fakeCategoryRepo) CategoryByName(_ context.Context, name string) (*models.Category, error) {
	category, ok := f.byName[name]
	if !ok {
		return nil, app_errors.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.byName))
	for _, c := range f.byName {
		out = append(out, *c)
	}
	return out, nil
}

func TestCreateCategory(t *testing.T) {
	s := NewService(logger.New("local"), &fakeCategoryRepo{byName: map[string]*models.Category{}})

	id, err := s.CreateCategory(context.Background(), "  Programming ")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Programming", categories[0].Name)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	s := NewService(logger.New("local"), &fakeCategoryRepo{byName: map[string]*models.Category{}})

	_, err := s.CreateCategory(context.Background(), "Programming")
	require.NoError(t, err)

	_, err = s.CreateCategory(context.Background(), "Programming")
	assert.ErrorIs(t, err, app_errors.ErrCategoryExists)
}
