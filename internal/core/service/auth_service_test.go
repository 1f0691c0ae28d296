package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/token"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthService(repo *stubAuthRepo) (*AuthService, *token.Service) {
	tokens := token.NewService("secret", time.Hour)
	return NewAuthService(repo, tokens), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, tokens := newAuthService(repo)

	result, err := svc.Register(context.Background(), "alice", "Alice@X.Com", "secret1", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Username != "alice" {
		t.Fatalf("unexpected username: %s", result.Username)
	}
	if result.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", result.Role)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.SubjectID != "id-alice" || claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	stored := repo.users["alice"]
	if stored.Email != "alice@x.com" {
		t.Fatalf("expected lowercased email, got %s", stored.Email)
	}
	if stored.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_ExplicitAdminRole(t *testing.T) {
	svc, _ := newAuthService(newStubAuthRepo())

	result, err := svc.Register(context.Background(), "root", "root@x.com", "secret1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", result.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(newStubAuthRepo())

	if _, err := svc.Register(context.Background(), "", "a@x.com", "pass", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pass", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "b@x.com", "pass", "superuser"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubAuthRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@x.com", "pass123", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@x.com", "pass456", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "robert", "bob@x.com", "pass456", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens := newAuthService(newStubAuthRepo())

	if _, err := svc.Register(context.Background(), "carol", "carol@x.com", "s3cret7", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret7")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Login_NoEnumerationSignal(t *testing.T) {
	svc, _ := newAuthService(newStubAuthRepo())

	_, _ = svc.Register(context.Background(), "dave", "dave@x.com", "goodpass", "")

	// Wrong password and unknown username must yield the same error.
	_, errWrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, errNoUser := svc.Login(context.Background(), "ghost", "badpass")

	if errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if errNoUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", errNoUser)
	}
}
