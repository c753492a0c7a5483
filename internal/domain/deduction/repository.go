package deduction

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deduction) error
	ListByProgramID(ctx context.Context, programID string) ([]Deduction, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, e *TrackingEntry) error
	ListByProgramID(ctx context.Context, programID string) ([]TrackingEntry, error)
}
