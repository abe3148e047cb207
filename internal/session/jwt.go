package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nos-auction/backend/internal/models"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "session"

var errInvalidToken = errors.New("invalid token")

// Claims holds the signed session identity.
type Claims struct {
	ParticipantID string `json:"participantId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens and writes the session cookie.
type Service struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewService creates a session service. ttl is both the token lifetime and
// the cookie max-age; secure controls the cookie Secure attribute.
func NewService(secret string, ttl time.Duration, secure bool) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs the identity into a token that expires after the service TTL.
func (s *Service) Issue(user models.SessionUser) (string, error) {
	now := time.Now()
	claims := Claims{
		ParticipantID: user.ParticipantID,
		FullName:      user.FullName,
		Email:         user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. Every failure mode (malformed token,
// wrong algorithm, bad signature, expired) reads as "no session"; callers
// never learn why a token was rejected.
func (s *Service) Verify(tokenString string) (models.SessionUser, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.SessionUser{}, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ParticipantID == "" {
		return models.SessionUser{}, false
	}
	return models.SessionUser{
		ParticipantID: claims.ParticipantID,
		FullName:      claims.FullName,
		Email:         claims.Email,
	}, true
}
