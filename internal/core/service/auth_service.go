package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// authService implements the mock sign-in. There is no user store and the
// password is not verified: the role is decided by the username string alone
// ("admin" gets the admin role, anything else is front-desk staff). What the
// service does take seriously is the session token: a signed HS256 JWT the
// API middleware validates on every request.
type authService struct {
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService returns an AuthService issuing tokens valid for tokenTTL.
func NewAuthService(jwtSecret string, tokenTTL time.Duration) ports.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *authService) Login(_ context.Context, username, _ string) (*ports.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user := domain.User{ID: "2", Username: username, Role: domain.RoleStaff, Name: "Front Desk"}
	if username == "admin" {
		user = domain.User{ID: "1", Username: "admin", Role: domain.RoleAdmin, Name: "Administrator"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *authService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"name":     user.Name,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
