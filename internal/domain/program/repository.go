package program

import "context"

type Repository interface {
	Create(ctx context.Context, p *Program) error
	Save(ctx context.Context, p *Program) error
	GetByProgramID(ctx context.Context, programID string) (*Program, error)
	GetByProgramIDForUpdate(ctx context.Context, programID string) (*Program, error)
	List(ctx context.Context) ([]Program, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Program, error)
	ListByStatuses(ctx context.Context, statuses []Status) ([]Program, error)
	// Delete soft-deletes the program and stamps who removed it. Child
	// ledgers are left in place (no cascading delete).
	Delete(ctx context.Context, p *Program, deletedBy string) error
}
