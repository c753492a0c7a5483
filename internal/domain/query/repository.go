package query

import "context"

type Repository interface {
	Create(ctx context.Context, q *Query) error
	Save(ctx context.Context, q *Query) error
	GetByQueryID(ctx context.Context, queryID string) (*Query, error)
	ListByProgramID(ctx context.Context, programID string) ([]Query, error)
}
