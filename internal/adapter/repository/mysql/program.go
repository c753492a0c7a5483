package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
)

type ProgramRepository struct{ db *gorm.DB }

func NewProgramRepository(db *gorm.DB) *ProgramRepository { return &ProgramRepository{db: db} }

func (r *ProgramRepository) Create(ctx context.Context, p *programDomain.Program) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProgramRepository) Save(ctx context.Context, p *programDomain.Program) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProgramRepository) GetByProgramID(ctx context.Context, programID string) (*programDomain.Program, error) {
	var out programDomain.Program
	res := r.db.WithContext(ctx).Where("program_id = ?", programID).First(&out)
	return &out, res.Error
}

// GetByProgramIDForUpdate locks the row for the duration of the surrounding
// transaction. Outside a transaction it behaves like GetByProgramID.
func (r *ProgramRepository) GetByProgramIDForUpdate(ctx context.Context, programID string) (*programDomain.Program, error) {
	var out programDomain.Program
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("program_id = ?", programID).
		First(&out)
	return &out, res.Error
}

func (r *ProgramRepository) List(ctx context.Context) ([]programDomain.Program, error) {
	var out []programDomain.Program
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *ProgramRepository) ListByOwner(ctx context.Context, ownerID string) ([]programDomain.Program, error) {
	var out []programDomain.Program
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ProgramRepository) ListByStatuses(ctx context.Context, statuses []programDomain.Status) ([]programDomain.Program, error) {
	var out []programDomain.Program
	res := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("submitted_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ProgramRepository) Delete(ctx context.Context, p *programDomain.Program, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}
