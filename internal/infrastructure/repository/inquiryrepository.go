package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/mappers"
	"courtside/internal/infrastructure/persistence/models"
	"courtside/internal/shared/db"
)

type InquiryRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	model := r.mapper.ToModel(inq)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return inq.SetID(model.ID)
}

func (r *InquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	model := r.mapper.ToModel(inq)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces every mapped column through, including zero values such
	// as solved=false, and keeps updated_at under mapper control. The read
	// marker is deliberately absent: it only moves through UpdateLastReadAt,
	// so a concurrent mark-as-read cannot be rewound by this stale entity.
	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", model.ID).
		Select("category_id", "title", "solved", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry: %w", result.Error)
	}

	return nil
}

// UpdateLastReadAt advances the owner's read marker. The guard in the WHERE
// clause keeps the write monotonic, so racing calls land on the latest value
// regardless of order, and updated_at is untouched.
func (r *InquiryRepository) UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ? AND last_read_at < ?", id, readAt.UnixMilli()).
		Update("last_read_at", readAt.UnixMilli())

	if result.Error != nil {
		return fmt.Errorf("failed to update read marker: %w", result.Error)
	}

	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inquiry not found")
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InquiryRepository) GetBySID(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inquiry not found")
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InquiryRepository) List(
	ctx context.Context,
	filter inquiry.InquiryFilter,
) ([]*inquiry.Inquiry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InquiryModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	switch filter.Segment {
	case inquiry.SegmentAssigned:
		query = query.Where("EXISTS (?)", inChargeSubquery(tx))
	case inquiry.SegmentUnassigned:
		query = query.Where("NOT EXISTS (?)", inChargeSubquery(tx))
	case inquiry.SegmentSolved:
		query = query.Where("solved = ?", true)
	case inquiry.SegmentUnsolved:
		query = query.Where("solved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	query = query.Order("updated_at DESC, id DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var inquiryModels []models.InquiryModel
	if err := query.Find(&inquiryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	inquiries := make([]*inquiry.Inquiry, len(inquiryModels))
	for i, model := range inquiryModels {
		inq, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		inquiries[i] = inq
	}

	return inquiries, total, nil
}

func inChargeSubquery(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.InquiryAssignmentModel{}).
		Select("1").
		Where("inquiry_assignments.inquiry_id = inquiries.id").
		Where("inquiry_assignments.in_charge = ?", true)
}
