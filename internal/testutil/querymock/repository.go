package querymock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, q *domain.Query) error
	SaveFn            func(ctx context.Context, q *domain.Query) error
	GetByQueryIDFn    func(ctx context.Context, queryID string) (*domain.Query, error)
	ListByProgramIDFn func(ctx context.Context, programID string) ([]domain.Query, error)
}

func (m *Repo) Create(ctx context.Context, q *domain.Query) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, q *domain.Query) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByQueryID(ctx context.Context, queryID string) (*domain.Query, error) {
	if m.GetByQueryIDFn != nil {
		return m.GetByQueryIDFn(ctx, queryID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByProgramID(ctx context.Context, programID string) ([]domain.Query, error) {
	if m.ListByProgramIDFn != nil {
		return m.ListByProgramIDFn(ctx, programID)
	}
	return nil, nil
}
