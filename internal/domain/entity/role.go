package entity

// Role is an authorization role, many-to-many with User via user_roles.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
