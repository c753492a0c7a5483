package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Programs:   &ProgramRepository{db: tx},
		Queries:    &QueryRepository{db: tx},
		Remarks:    &RemarkRepository{db: tx},
		Documents:  &DocumentRepository{db: tx},
		Deductions: &DeductionRepository{db: tx},
		Tracking:   &TrackingRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinProgramTx(ctx context.Context, programID string, fn func(r uow.Repos, p *program.Program) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the program row up-front to prevent races
		p, err := r.Programs.GetByProgramIDForUpdate(ctx, programID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
