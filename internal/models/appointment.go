package models

// Appointment for a time slot. Time and StartTime are duplicated for
// compatibility with older frontend builds and are kept in sync on create.
// ClientID references a Client by id; the reference is advisory only.
type Appointment struct {
	ID         string `json:"id"`
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName,omitempty"`

	Date      string `json:"date"`
	Time      string `json:"time"`
	StartTime string `json:"startTime"`

	Service string `json:"service,omitempty"`
	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
