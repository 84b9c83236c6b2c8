package ports

import (
	"auth-web-server/internal/model"
	"context"
)

type AuthenticationService interface {
	SignIn(ctx context.Context, email, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string)
	ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
