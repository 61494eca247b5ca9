package models

import "time"

// ContactSubmission is the normalized, validated form record as it is
// persisted. IPHash is a one-way fingerprint of the submitter address;
// the raw address is never stored.
type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Consent   bool      `json:"consent"`
	Source    string    `json:"source"`
	Page      string    `json:"page"`
	IPHash    *string   `json:"ip_hash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
