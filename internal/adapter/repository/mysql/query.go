package mysql

import (
	"context"

	"gorm.io/gorm"

	queryDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
)

type QueryRepository struct{ db *gorm.DB }

func NewQueryRepository(db *gorm.DB) *QueryRepository { return &QueryRepository{db: db} }

func (r *QueryRepository) Create(ctx context.Context, q *queryDomain.Query) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QueryRepository) Save(ctx context.Context, q *queryDomain.Query) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QueryRepository) GetByQueryID(ctx context.Context, queryID string) (*queryDomain.Query, error) {
	var out queryDomain.Query
	res := r.db.WithContext(ctx).Where("query_id = ?", queryID).First(&out)
	return &out, res.Error
}

func (r *QueryRepository) ListByProgramID(ctx context.Context, programID string) ([]queryDomain.Query, error) {
	var out []queryDomain.Query
	res := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
