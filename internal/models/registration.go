package models

import "time"

// Registration is one row of the Registrations table. Append-only: never
// updated or deleted once written.
type Registration struct {
	Timestamp     time.Time
	ParticipantID string
	FullName      string
	CompanyName   string
	Email         string
	Phone         string
	Country       string
	Interests     []string
	ClientIP      string
	UserAgent     string
}
