// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	store SessionProvider
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(store SessionProvider) adapter.CategoryRepository {
	return &categoryRepository{
		store: store,
	}
}

// Create persists a new category.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	categoryModel := model.CategoryFromEntity(category)
	if err := conn.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return err
	}

	slog.Info("Category created", "category_id", category.ID, "name", category.Name)
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var categoryModel model.CategoryModel
	result := conn.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories, ordered by name ascending.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var categoryModels []model.CategoryModel
	if err := conn.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Delete removes a category, detaching it from any payments that reference
// it. Idempotent: deleting a non-existent id is not an error.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	err = conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PaymentModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CategoryModel{}).Error
	})
	if err != nil {
		return err
	}

	slog.Info("Category deleted", "category_id", id)
	return nil
}
