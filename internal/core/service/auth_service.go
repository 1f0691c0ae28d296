package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gameverse/content-api/internal/api/metrics"
	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/ports"
	"github.com/gameverse/content-api/internal/core/token"
)

// AuthService implements registration and login on top of the user
// repository and the token service.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *token.Service
}

func NewAuthService(repo ports.AuthRepository, tokens *token.Service) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates an account and returns a freshly issued token for it.
// Hashing happens here, at the call site, whenever a plaintext password
// enters the system: the stored record only ever sees the bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*ports.AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	tkn, err := s.tokens.Issue(created.ID, created.Username, created.Role)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: tkn, Username: created.Username, Role: created.Role}, nil
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password produce the same ErrInvalidCredentials so responses give
// no user-enumeration signal.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: tkn, Username: user.Username, Role: user.Role}, nil
}
