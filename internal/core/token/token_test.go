package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestService_IssueVerify_Roundtrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue("user-1", "alice", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.SubjectID != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.SubjectID)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestService_Verify_Expired(t *testing.T) {
	// Negative TTL bypasses the DefaultTTL fallback path in NewService,
	// so build the service directly with an already-elapsed window.
	svc := &Service{secret: []byte("secret"), ttl: -time.Minute}

	signed, err := svc.Issue("user-1", "alice", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestService_Verify_ExpiryBoundary(t *testing.T) {
	svc := NewService("secret", time.Hour)

	sign := func(exp time.Time) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":      "user-1",
			"username": "alice",
			"role":     "user",
			"exp":      exp.Unix(),
		}).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return signed
	}

	// One minute before expiry the token still verifies; one minute after
	// it does not.
	if _, err := svc.Verify(sign(time.Now().Add(time.Minute))); err != nil {
		t.Fatalf("token inside its window rejected: %v", err)
	}
	if _, err := svc.Verify(sign(time.Now().Add(-time.Minute))); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken past expiry, got %v", err)
	}
}

func TestService_Verify_WrongSecret(t *testing.T) {
	signed, err := NewService("secret-a", time.Hour).Issue("user-1", "alice", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewService("secret-b", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_Verify_WrongAlgorithm(t *testing.T) {
	// Token signed with "none" must be rejected even though it parses.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewService("secret", time.Hour)
	if _, err := svc.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestService_Verify_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewService("secret", time.Hour)
	if _, err := svc.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing claims, got %v", err)
	}
}
