// Package token implements issuing and verifying the signed bearer tokens
// used across the API. Tokens are self-contained HS256 JWTs; there is no
// server-side session or revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL bounds the lifetime of a leaked token; clients re-login when
// it elapses.
const DefaultTTL = time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded payload of a verified token.
type Claims struct {
	SubjectID string
	Username  string
	Role      string
}

// Service signs and verifies tokens with a single process-wide symmetric
// secret, loaded once at startup and read-only thereafter.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token embedding the subject's identity and role, expiring
// at issue time plus the configured TTL.
func (s *Service) Issue(subjectID, username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      subjectID,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a signed token. Any failure (bad signature,
// malformed structure, elapsed expiry) is reported as ErrInvalidToken;
// there is no soft-expiry grace period.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{SubjectID: sub, Username: username, Role: role}, nil
}
