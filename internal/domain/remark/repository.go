package remark

import "context"

type Repository interface {
	Create(ctx context.Context, r *Remark) error
	ListByProgramID(ctx context.Context, programID string) ([]Remark, error)
}
