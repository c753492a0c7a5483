package programmock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the methods a test fills in do anything useful.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Program) error
	SaveFn                    func(ctx context.Context, p *domain.Program) error
	GetByProgramIDFn          func(ctx context.Context, programID string) (*domain.Program, error)
	GetByProgramIDForUpdateFn func(ctx context.Context, programID string) (*domain.Program, error)
	ListFn                    func(ctx context.Context) ([]domain.Program, error)
	ListByOwnerFn             func(ctx context.Context, ownerID string) ([]domain.Program, error)
	ListByStatusesFn          func(ctx context.Context, statuses []domain.Status) ([]domain.Program, error)
	DeleteFn                  func(ctx context.Context, p *domain.Program, deletedBy string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Program) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Program) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProgramID(ctx context.Context, programID string) (*domain.Program, error) {
	if m.GetByProgramIDFn != nil {
		return m.GetByProgramIDFn(ctx, programID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProgramIDForUpdate(ctx context.Context, programID string) (*domain.Program, error) {
	if m.GetByProgramIDForUpdateFn != nil {
		return m.GetByProgramIDForUpdateFn(ctx, programID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Program, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Program, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatuses(ctx context.Context, statuses []domain.Status) ([]domain.Program, error) {
	if m.ListByStatusesFn != nil {
		return m.ListByStatusesFn(ctx, statuses)
	}
	return nil, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, p *domain.Program, deletedBy string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p, deletedBy)
	}
	return nil
}
