package remarkmock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, r *domain.Remark) error
	ListByProgramIDFn func(ctx context.Context, programID string) ([]domain.Remark, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Remark) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByProgramID(ctx context.Context, programID string) ([]domain.Remark, error) {
	if m.ListByProgramIDFn != nil {
		return m.ListByProgramIDFn(ctx, programID)
	}
	return nil, nil
}
