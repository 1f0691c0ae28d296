package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gameverse/content-api/internal/api/middleware"
	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/token"
)

// newGatedEcho wires an admin-gated route exactly as the router does, with
// the real error handler, so the 401/403 split can be exercised end to end.
func newGatedEcho(tokens *token.Service) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop(), "production")
	e.POST("/api/news/add", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "news article added"})
	}, middleware.Auth(tokens), middleware.RBAC(domain.RoleAdmin))
	return e
}

func TestAdminGate_UserTokenForbidden(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	e := newGatedEcho(tokens)

	// A valid token for a regular user: authenticates fine, fails RBAC.
	signed, err := tokens.Issue("user-1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/news/add", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin token, got %d", rec.Code)
	}
}

func TestAdminGate_MissingTokenUnauthorized(t *testing.T) {
	e := newGatedEcho(token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/news/add", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Authenticate runs before Authorize: no token is 401, not 403.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", rec.Code)
	}
}

func TestAdminGate_InvalidTokenUnauthorized(t *testing.T) {
	e := newGatedEcho(token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/news/add", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", rec.Code)
	}
}

func TestAdminGate_AdminTokenPasses(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	e := newGatedEcho(tokens)

	signed, err := tokens.Issue("user-2", "root", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/news/add", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin token, got %d", rec.Code)
	}
}
