package models

// Service offered by the salon. CategoryID is a free-text reference to a
// category maintained by the frontend; there is no backing collection for it.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
