package entity

import "time"

// Post is read-only through the API; rows are written by the seed tool.
type Post struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Body           string    `json:"body,omitempty"`
	LastUpdateDate time.Time `json:"lastUpdateDate"`
	Author         *User     `json:"author,omitempty"`
	Category       *Category `json:"category,omitempty"`
}
