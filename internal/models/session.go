package models

// SessionUser is the identity embedded in the signed session cookie. It is
// created once at registration and never mutated; its only durable copies are
// the cookie held by the client and the Registrations row.
type SessionUser struct {
	ParticipantID string `json:"participantId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
}
