package identitymock

import (
	"context"

	domain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
)

// Service is a function-backed mock for domain.Service.
type Service struct {
	LookupFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *Service) Lookup(ctx context.Context, userID string) (*domain.User, error) {
	if m.LookupFn != nil {
		return m.LookupFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// Directory builds a Service backed by a fixed user set, which is what most
// usecase tests want.
func Directory(users ...domain.User) *Service {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return &Service{
		LookupFn: func(ctx context.Context, userID string) (*domain.User, error) {
			u, ok := byID[userID]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &u, nil
		},
	}
}
