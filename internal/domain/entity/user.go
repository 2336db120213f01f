package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the plain credential.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Image     string    `json:"image,omitempty"`
	Slug      string    `json:"slug"`
	Roles     []Role    `json:"roles,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoleNames returns the names of the user's roles, used as token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
