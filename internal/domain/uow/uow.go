package uow

import (
	"context"

	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/document"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Programs   program.Repository
	Queries    query.Repository
	Remarks    remark.Repository
	Documents  document.Repository
	Deductions deduction.Repository
	Tracking   deduction.TrackingRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the program row first, then pass it in
	WithinProgramTx(ctx context.Context, programID string, fn func(r Repos, p *program.Program) error) error
}
