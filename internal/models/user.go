package models

// User with API access. PasswordHash is a bcrypt hash; it is stored in the
// users document but cleared before the user is written to a response.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsActive     bool   `json:"isActive"`

	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
}
