package ports

import "context"

// AuthResult is returned by both registration and login: a freshly minted
// bearer token plus the identity it encodes.
type AuthResult struct {
	Token    string
	Username string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
