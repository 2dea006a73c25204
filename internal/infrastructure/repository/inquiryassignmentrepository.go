package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/mappers"
	"courtside/internal/infrastructure/persistence/models"
	"courtside/internal/shared/db"
)

type InquiryAssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryAssignmentRepository(db *gorm.DB) *InquiryAssignmentRepository {
	return &InquiryAssignmentRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

// Upsert inserts the assignment row or, when the (inquiry, moderator) pair
// already exists, flips in_charge back on. Existing last_read_at and
// created_at survive the conflict so a returning moderator keeps their read
// marker. Concurrent double-assigns land on the same row either way.
func (r *InquiryAssignmentRepository) Upsert(ctx context.Context, a *inquiry.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "inquiry_id"}, {Name: "moderator_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"in_charge": true}),
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert assignment: %w", result.Error)
	}

	// On conflict some drivers do not report the surviving row's ID, so
	// reload it before handing it back to the domain.
	if model.ID == 0 || a.ID() == 0 {
		var existing models.InquiryAssignmentModel
		if err := tx.
			Where("inquiry_id = ? AND moderator_id = ?", a.InquiryID(), a.ModeratorID()).
			First(&existing).Error; err != nil {
			return fmt.Errorf("failed to reload assignment: %w", err)
		}
		return a.SetID(existing.ID)
	}

	return nil
}

func (r *InquiryAssignmentRepository) Update(ctx context.Context, a *inquiry.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// in_charge only; the read marker moves through UpdateLastReadAt so a
	// stale entity cannot rewind a concurrent mark-as-read.
	result := tx.
		Model(&models.InquiryAssignmentModel{}).
		Where("id = ?", model.ID).
		Select("in_charge").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}

	return nil
}

// UpdateLastReadAt advances the moderator's read marker; the WHERE guard
// keeps it monotonic under racing calls.
func (r *InquiryAssignmentRepository) UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryAssignmentModel{}).
		Where("id = ? AND last_read_at < ?", id, readAt.UnixMilli()).
		Update("last_read_at", readAt.UnixMilli())

	if result.Error != nil {
		return fmt.Errorf("failed to update read marker: %w", result.Error)
	}

	return nil
}

func (r *InquiryAssignmentRepository) GetByInquiryAndModerator(ctx context.Context, inquiryID, moderatorID uint) (*inquiry.Assignment, error) {
	var model models.InquiryAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ? AND moderator_id = ?", inquiryID, moderatorID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assignment not found")
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

func (r *InquiryAssignmentRepository) ListByInquiry(ctx context.Context, inquiryID uint) ([]*inquiry.Assignment, error) {
	var assignmentModels []models.InquiryAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*inquiry.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		a, err := r.mapper.AssignmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		assignments[i] = a
	}

	return assignments, nil
}

func (r *InquiryAssignmentRepository) HasInCharge(ctx context.Context, inquiryID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.InquiryAssignmentModel{}).
		Where("inquiry_id = ? AND in_charge = ?", inquiryID, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count active assignments: %w", err)
	}

	return count > 0, nil
}
