package uowmock

import (
	"context"
	"errors"

	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinProgramTxFn func(ctx context.Context, programID string, fn func(r uow.Repos, p *program.Program) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires both methods straight through to the given repos: fn runs
// as if inside a committed transaction, and WithinProgramTx resolves the
// program via the bundled Programs repo.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinProgramTxFn: func(ctx context.Context, programID string, fn func(uow.Repos, *program.Program) error) error {
			p, err := r.Programs.GetByProgramIDForUpdate(ctx, programID)
			if err != nil {
				return err
			}
			return fn(r, p)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinProgramTx(ctx context.Context, programID string, fn func(r uow.Repos, p *program.Program) error) error {
	if m.WithinProgramTxFn != nil {
		return m.WithinProgramTxFn(ctx, programID, fn)
	}
	return errUnimplemented
}
