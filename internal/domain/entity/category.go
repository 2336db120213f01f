package entity

// Category groups posts. Slug is unique and stored lower-case.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
