package model

// TokenKind : назначение токена, записывается в claim "typ"
type TokenKind string

const (
	AccessTokenKind  TokenKind = "access"
	RefreshTokenKind TokenKind = "refresh"
)

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"token"`

	// Refresh токен (JWT, используется только для получения нового access токена)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}
