package ports

import (
	"context"

	"github.com/gameverse/content-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// Create inserts a user. Returns domain.ErrUserExists when the username
	// or email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any user already claims either value.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
