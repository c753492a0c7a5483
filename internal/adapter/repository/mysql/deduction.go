package mysql

import (
	"context"

	"gorm.io/gorm"

	deductionDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
)

type DeductionRepository struct{ db *gorm.DB }

func NewDeductionRepository(db *gorm.DB) *DeductionRepository { return &DeductionRepository{db: db} }

func (r *DeductionRepository) Create(ctx context.Context, d *deductionDomain.Deduction) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeductionRepository) ListByProgramID(ctx context.Context, programID string) ([]deductionDomain.Deduction, error) {
	var out []deductionDomain.Deduction
	res := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

type TrackingRepository struct{ db *gorm.DB }

func NewTrackingRepository(db *gorm.DB) *TrackingRepository { return &TrackingRepository{db: db} }

func (r *TrackingRepository) Create(ctx context.Context, e *deductionDomain.TrackingEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *TrackingRepository) ListByProgramID(ctx context.Context, programID string) ([]deductionDomain.TrackingEntry, error) {
	var out []deductionDomain.TrackingEntry
	res := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
