package identity

// Policy is the single authorization authority injected into every workflow
// operation. Role checks live here and nowhere else.
type Policy struct{}

func NewPolicy() Policy { return Policy{} }

func (Policy) IsAdmin(u *User) bool { return u != nil && u.Role == RoleAdmin }

// CanReview covers the finance actions: raise query, approve, reject, accept
// document, deduct budget. Admins can act as finance.
func (Policy) CanReview(u *User) bool {
	return u != nil && (u.Role == RoleFinance || u.Role == RoleAdmin)
}

// CanEditContent gates content-field updates and query answers: the program
// owner or an admin.
func (Policy) CanEditContent(u *User, ownerID string) bool {
	return u != nil && (u.Role == RoleAdmin || u.UserID == ownerID)
}

// CanSetStatus gates the direct status overwrite, the one privileged escape
// hatch next to the operation-specific transitions.
func (Policy) CanSetStatus(u *User) bool { return u != nil && u.Role == RoleAdmin }
