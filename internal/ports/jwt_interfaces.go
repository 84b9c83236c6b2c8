package ports

import (
	"auth-web-server/internal/model"
	"context"
)

type TokenService interface {
	IssueTokenPair(subject string) (*model.TokensPair, error)
	Validate(token string) bool
	ValidateKind(token string, kind model.TokenKind) bool
	ExtractSubject(token string) (string, error)
	Invalidate(ctx context.Context, token string) error
	IsInvalidated(ctx context.Context, token string) bool
	Refresh(subject, refreshToken string) (*model.TokensPair, error)
}

// InvalidationStore : хранилище отозванных токенов.
// Add должен быть идемпотентным.
type InvalidationStore interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
}
