package documentmock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/document"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, v *domain.Version) error
	ListByProgramIDFn    func(ctx context.Context, programID string) ([]domain.Version, error)
	ExistsByStoredNameFn func(ctx context.Context, programID, storedName string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.Version) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) ListByProgramID(ctx context.Context, programID string) ([]domain.Version, error) {
	if m.ListByProgramIDFn != nil {
		return m.ListByProgramIDFn(ctx, programID)
	}
	return nil, nil
}

func (m *Repo) ExistsByStoredName(ctx context.Context, programID, storedName string) (bool, error) {
	if m.ExistsByStoredNameFn != nil {
		return m.ExistsByStoredNameFn(ctx, programID, storedName)
	}
	return false, nil
}
