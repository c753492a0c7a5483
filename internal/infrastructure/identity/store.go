package identity

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
)

// userRow is the minimal slice of the surrounding system's users table that
// the workflow core reads: role and display name per user id.
type userRow struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id"`
	Name      string    `gorm:"size:255"`
	Role      string    `gorm:"type:enum('applicant','finance','admin')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (userRow) TableName() string { return "users" }

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

var _ domain.Service = (*Store)(nil)

func (s *Store) Lookup(ctx context.Context, userID string) (*domain.User, error) {
	var row userRow
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, res.Error
	}
	return &domain.User{UserID: row.UserID, Name: row.Name, Role: domain.Role(row.Role)}, nil
}
