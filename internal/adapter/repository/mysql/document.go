package mysql

import (
	"context"

	"gorm.io/gorm"

	documentDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, v *documentDomain.Version) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *DocumentRepository) ListByProgramID(ctx context.Context, programID string) ([]documentDomain.Version, error) {
	var out []documentDomain.Version
	res := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) ExistsByStoredName(ctx context.Context, programID, storedName string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&documentDomain.Version{}).
		Where("program_id = ? AND stored_name = ?", programID, storedName).
		Count(&n)
	return n > 0, res.Error
}
