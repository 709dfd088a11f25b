package policy

import (
	"solidusers/cmd/internal/domain/entity"
)

// UserPolicy encapsulates the state rules of a user record.
//
// The admin flag has two states, regular and admin, and a single
// transition between them. Nothing turns an admin back into a regular user.
type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// NewUser applies the defaults every freshly created user starts with.
func (p *UserPolicy) NewUser(id, name, email string, now int64) *entity.User {
	return &entity.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Admin:     false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PromoteToAdmin moves 'target' to the admin state and refreshes its update time.
// It reports whether the flag actually changed, promoting an admin is a no-op
// besides the timestamp.
func (p *UserPolicy) PromoteToAdmin(target *entity.User, now int64) bool {
	changed := !target.Admin
	target.Admin = true
	target.UpdatedAt = now
	return changed
}
