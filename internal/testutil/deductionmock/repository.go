package deductionmock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, d *domain.Deduction) error
	ListByProgramIDFn func(ctx context.Context, programID string) ([]domain.Deduction, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Deduction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByProgramID(ctx context.Context, programID string) ([]domain.Deduction, error) {
	if m.ListByProgramIDFn != nil {
		return m.ListByProgramIDFn(ctx, programID)
	}
	return nil, nil
}

// TrackingRepo is a function-backed mock for domain.TrackingRepository.
type TrackingRepo struct {
	CreateFn          func(ctx context.Context, e *domain.TrackingEntry) error
	ListByProgramIDFn func(ctx context.Context, programID string) ([]domain.TrackingEntry, error)
}

func (m *TrackingRepo) Create(ctx context.Context, e *domain.TrackingEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *TrackingRepo) ListByProgramID(ctx context.Context, programID string) ([]domain.TrackingEntry, error) {
	if m.ListByProgramIDFn != nil {
		return m.ListByProgramIDFn(ctx, programID)
	}
	return nil, nil
}
