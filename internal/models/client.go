package models

// Client of the salon. Phone is the business key: no two clients may
// share one. Timestamps are ISO strings so the stored document matches
// what the frontend reads back.
type Client struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`

	TotalVisits int     `json:"totalVisits"`
	TotalSpent  float64 `json:"totalSpent"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
