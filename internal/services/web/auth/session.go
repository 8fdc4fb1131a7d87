package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/schooldesk/theschooldesk.app/internal/platform/branding"
	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
)

// ErrInvalidSession indicates a session token that failed verification.
var ErrInvalidSession = errors.New("invalid session")

// DefaultSessionTTL mirrors the original deployment's two-week sessions.
const DefaultSessionTTL = 14 * 24 * time.Hour

// Sessions issues and verifies the signed tokens carried by the session
// cookie. Tokens are HS256 JWTs whose subject is the user ID.
type Sessions struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	Now    func() time.Time
}

func (s Sessions) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

func (s Sessions) issuer() string {
	if s.Issuer != "" {
		return s.Issuer
	}
	return branding.Domain
}

func (s Sessions) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a session token for a user.
func (s Sessions) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if len(s.Secret) == 0 {
		return "", fmt.Errorf("session secret is not configured")
	}

	jti, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer(),
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        jti,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify checks a session token and returns the user ID it names.
func (s Sessions) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidSession
	}
	if len(s.Secret) == 0 {
		return "", fmt.Errorf("session secret is not configured")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer()),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", ErrInvalidSession
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
