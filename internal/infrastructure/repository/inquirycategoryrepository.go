package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/mappers"
	"courtside/internal/infrastructure/persistence/models"
	"courtside/internal/shared/db"
)

type InquiryCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryCategoryRepository(db *gorm.DB) *InquiryCategoryRepository {
	return &InquiryCategoryRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *InquiryCategoryRepository) Create(ctx context.Context, c *inquiry.Category) error {
	model := r.mapper.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *InquiryCategoryRepository) GetByID(ctx context.Context, id uint) (*inquiry.Category, error) {
	var model models.InquiryCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *InquiryCategoryRepository) GetByName(ctx context.Context, name string) (*inquiry.Category, error) {
	var model models.InquiryCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *InquiryCategoryRepository) List(ctx context.Context) ([]*inquiry.Category, error) {
	var categoryModels []models.InquiryCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*inquiry.Category, len(categoryModels))
	for i, model := range categoryModels {
		c, err := r.mapper.CategoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}

	return categories, nil
}

func (r *InquiryCategoryRepository) CreateDisplayName(ctx context.Context, d *inquiry.CategoryDisplayName) error {
	model := r.mapper.DisplayNameToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category display name: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *InquiryCategoryRepository) ListDisplayNames(ctx context.Context, categoryID uint) ([]*inquiry.CategoryDisplayName, error) {
	var displayModels []models.InquiryCategoryDisplayNameModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("category_id = ?", categoryID).
		Order("language ASC").
		Find(&displayModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list category display names: %w", err)
	}

	names := make([]*inquiry.CategoryDisplayName, len(displayModels))
	for i, model := range displayModels {
		d, err := r.mapper.DisplayNameToDomain(&model)
		if err != nil {
			return nil, err
		}
		names[i] = d
	}

	return names, nil
}
