package mysql

import (
	"context"

	"gorm.io/gorm"

	remarkDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
)

type RemarkRepository struct{ db *gorm.DB }

func NewRemarkRepository(db *gorm.DB) *RemarkRepository { return &RemarkRepository{db: db} }

func (r *RemarkRepository) Create(ctx context.Context, m *remarkDomain.Remark) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RemarkRepository) ListByProgramID(ctx context.Context, programID string) ([]remarkDomain.Remark, error) {
	var out []remarkDomain.Remark
	res := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
