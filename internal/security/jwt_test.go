package security_test

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-key-which-is-long-enough-for-hs512")

// testClock : управляемые часы для проверки сроков жизни токенов
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func jwtConfig(secret []byte) *config.JWTConfig {
	return &config.JWTConfig{
		SecretKey:       base64.StdEncoding.EncodeToString(secret),
		AccessTokenTTL:  "1m",
		RefreshTokenTTL: "24h",
		Issuer:          "auth-web-server",
	}
}

func newJWTService(t *testing.T, clock *testClock) (*security.JWTService, *security.MemoryInvalidationStore) {
	t.Helper()
	store := security.NewMemoryInvalidationStore()
	service, err := security.NewJWTService(jwtConfig(testSecret), store, security.WithClock(clock.Now))
	require.NoError(t, err)
	return service, store
}

type failingStore struct{}

func (failingStore) Add(context.Context, string) error { return errors.New("store is down") }

func (failingStore) Contains(context.Context, string) (bool, error) {
	return false, errors.New("store is down")
}

func TestNewJWTService_InvalidConfig(t *testing.T) {
	store := security.NewMemoryInvalidationStore()

	tests := []struct {
		name   string
		modify func(cfg *config.JWTConfig)
	}{
		{
			name:   "secret is not base64",
			modify: func(cfg *config.JWTConfig) { cfg.SecretKey = "%%% not base64 %%%" },
		},
		{
			name:   "empty secret",
			modify: func(cfg *config.JWTConfig) { cfg.SecretKey = "" },
		},
		{
			name:   "bad access ttl",
			modify: func(cfg *config.JWTConfig) { cfg.AccessTokenTTL = "soon" },
		},
		{
			name:   "negative refresh ttl",
			modify: func(cfg *config.JWTConfig) { cfg.RefreshTokenTTL = "-1h" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := jwtConfig(testSecret)
			tt.modify(cfg)

			service, err := security.NewJWTService(cfg, store)
			assert.Error(t, err)
			assert.Nil(t, service)
		})
	}
}

func TestJWTService_IssueTokenPair(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.True(t, service.Validate(pair.AccessToken))
	assert.True(t, service.Validate(pair.RefreshToken))

	assert.True(t, service.ValidateKind(pair.AccessToken, model.AccessTokenKind))
	assert.False(t, service.ValidateKind(pair.AccessToken, model.RefreshTokenKind))
	assert.True(t, service.ValidateKind(pair.RefreshToken, model.RefreshTokenKind))
	assert.False(t, service.ValidateKind(pair.RefreshToken, model.AccessTokenKind))

	subject, err := service.ExtractSubject(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWTService_Claims(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	claims := &security.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(pair.RefreshToken, claims)
	require.NoError(t, err)

	assert.Equal(t, model.RefreshTokenKind, claims.Kind)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "auth-web-server", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, clock.now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, clock.now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_AccessTokenExpiry(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	assert.True(t, service.Validate(pair.AccessToken))

	clock.Advance(2 * time.Second)
	assert.False(t, service.Validate(pair.AccessToken))
	assert.True(t, service.Validate(pair.RefreshToken))
}

func TestJWTService_RefreshTokenExpiry(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	clock.Advance(24*time.Hour - time.Second)
	assert.True(t, service.ValidateKind(pair.RefreshToken, model.RefreshTokenKind))

	clock.Advance(2 * time.Second)
	assert.False(t, service.ValidateKind(pair.RefreshToken, model.RefreshTokenKind))
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	otherService, err := security.NewJWTService(
		jwtConfig([]byte("another-signing-key-used-by-somebody-else")),
		security.NewMemoryInvalidationStore(),
		security.WithClock(clock.Now),
	)
	require.NoError(t, err)

	foreignPair, err := otherService.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	ownPair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)
	otherPair, err := service.IssueTokenPair("b@x.com")
	require.NoError(t, err)

	ownParts := strings.Split(ownPair.AccessToken, ".")
	otherParts := strings.Split(otherPair.AccessToken, ".")
	swappedPayload := ownParts[0] + "." + otherParts[1] + "." + ownParts[2]

	claims := security.Claims{
		Kind: model.AccessTokenKind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Minute)),
		},
	}
	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	withoutExp := security.Claims{
		Kind:             model.AccessTokenKind,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com"},
	}
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS512, withoutExp).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "signed with another key", token: foreignPair.AccessToken},
		{name: "payload replaced", token: swappedPayload},
		{name: "HS256 algorithm", token: hs256},
		{name: "none algorithm", token: none},
		{name: "without expiration", token: noExp},
		{name: "malformed", token: "not-a-jwt"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, service.Validate(tt.token))
			assert.False(t, service.ValidateKind(tt.token, model.AccessTokenKind))

			_, err := service.ExtractSubject(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Refresh(t *testing.T) {
	clock := newClock()
	service, _ := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	refreshed, err := service.Refresh("a@x.com", pair.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)
	assert.False(t, service.Validate(pair.AccessToken))
	assert.True(t, service.ValidateKind(refreshed.AccessToken, model.AccessTokenKind))

	subject, err := service.ExtractSubject(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWTService_Invalidate(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	service, store := newJWTService(t, clock)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	assert.False(t, service.IsInvalidated(ctx, pair.RefreshToken))

	require.NoError(t, service.Invalidate(ctx, pair.RefreshToken))
	require.NoError(t, service.Invalidate(ctx, pair.RefreshToken))

	assert.True(t, service.Validate(pair.RefreshToken))
	assert.True(t, service.IsInvalidated(ctx, pair.RefreshToken))
	assert.False(t, service.IsInvalidated(ctx, pair.AccessToken))

	found, err := store.Contains(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = store.Contains(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJWTService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	service, err := security.NewJWTService(jwtConfig(testSecret), failingStore{})
	require.NoError(t, err)

	pair, err := service.IssueTokenPair("a@x.com")
	require.NoError(t, err)

	assert.Error(t, service.Invalidate(ctx, pair.RefreshToken))
	assert.True(t, service.IsInvalidated(ctx, pair.RefreshToken))
}
