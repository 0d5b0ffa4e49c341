package model

// Medico is the single registered practitioner. The record is created once
// and never replaced or deleted through the API.
type Medico struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
