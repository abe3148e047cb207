package utils

import "crypto/rand"

const (
	idAlphabet = "1234567890abcdefghijklmnopqrstuvwxyz"
	idLength   = 14
)

// NewParticipantID returns a 14-character lowercase alphanumeric identifier.
// IDs are opaque; nothing ever parses one back apart.
func NewParticipantID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i, v := range b {
		b[i] = idAlphabet[int(v)%len(idAlphabet)]
	}
	return string(b), nil
}
