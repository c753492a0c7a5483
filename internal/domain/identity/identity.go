package identity

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrPermissionDenied = errors.New("permission denied")
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleFinance   Role = "finance"
	RoleAdmin     Role = "admin"
)

type User struct {
	UserID string
	Name   string
	Role   Role
}

// Service resolves a user id to role and display name. Authentication itself
// is owned by the surrounding system; the workflow core only looks identities
// up for permission checks and *_by_name fields.
type Service interface {
	Lookup(ctx context.Context, userID string) (*User, error)
}
