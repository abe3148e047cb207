package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nos-auction/backend/internal/models"
)

func testUser() models.SessionUser {
	return models.SessionUser{
		ParticipantID: "x7k2m9qw4tz8ab",
		FullName:      "Alex Carter",
		Email:         "alex@example.com",
	}
}

func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := NewService("test-secret", 30*24*time.Hour, false)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok := svc.Verify(token)
	require.True(t, ok)
	assert.Equal(t, testUser(), got)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Hour, false)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, ok := svc.Verify(token)
	assert.False(t, ok, "expired token should read as no session")
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour, false)
	verifier := NewService("secret-b", time.Hour, false)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok, "token signed with another secret should read as no session")
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc := NewService("test-secret", time.Hour, false)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	payload[0] ^= 0x01
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, ok := svc.Verify(tampered)
	assert.False(t, ok, "tampered token should read as no session")
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour, false)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, ok := svc.Verify(tok)
		assert.False(t, ok, "garbage %q should read as no session", tok)
	}
}
