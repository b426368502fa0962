package ports

import (
	"context"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string
	User  domain.User
}

// AuthService implements the mock sign-in: the role is decided by the
// username string alone, and a signed session token is issued for the API.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
