package security

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/util"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var signingMethod = jwt.SigningMethodHS512

type Claims struct {
	Kind model.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	issuer          string
	store           ports.InvalidationStore
	now             func() time.Time
}

type Option func(*JWTService)

// WithClock : подменяет источник текущего времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

func NewJWTService(cfg *config.JWTConfig, store ports.InvalidationStore, opts ...Option) (*JWTService, error) {
	secretKey, err := base64.StdEncoding.DecodeString(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("ключ подписи должен быть в base64: %w", err)
	}
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("пустой ключ подписи")
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга refresh_token_ttl: %w", err)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("время жизни токенов должно быть положительным")
	}

	service := &JWTService{
		secretKey:       secretKey,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
		issuer:          cfg.Issuer,
		store:           store,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// IssueTokenPair : выпускает access и refresh токены для subject (email пользователя)
func (service *JWTService) IssueTokenPair(subject string) (*model.TokensPair, error) {
	accessToken, err := service.sign(subject, model.AccessTokenKind, service.accessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.sign(subject, model.RefreshTokenKind, service.refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh : новый access токен, refresh токен возвращается тот же самый
func (service *JWTService) Refresh(subject, refreshToken string) (*model.TokensPair, error) {
	accessToken, err := service.sign(subject, model.AccessTokenKind, service.accessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) sign(subject string, kind model.TokenKind, ttl time.Duration) (string, error) {
	now := service.now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(service.secretKey)
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return signed, nil
}

func (service *JWTService) parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return service.secretKey, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// Validate : проверяет подпись, алгоритм и срок действия.
// Никогда не возвращает ошибку: любая проблема логируется и дает false.
func (service *JWTService) Validate(tokenStr string) bool {
	_, err := service.parse(tokenStr)
	if err != nil {
		logInvalidToken(err)
		return false
	}
	return true
}

// ValidateKind : Validate плюс проверка claim "typ"
func (service *JWTService) ValidateKind(tokenStr string, kind model.TokenKind) bool {
	claims, err := service.parse(tokenStr)
	if err != nil {
		logInvalidToken(err)
		return false
	}

	if claims.Kind != kind {
		util.Logger().Warn("неверный тип токена",
			zap.String("expected", string(kind)),
			zap.String("actual", string(claims.Kind)))
		return false
	}

	return true
}

// ExtractSubject : достает subject из токена.
// Токен должен быть предварительно проверен через Validate/ValidateKind,
// иначе вернется ошибка разбора.
func (service *JWTService) ExtractSubject(tokenStr string) (string, error) {
	claims, err := service.parse(tokenStr)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать токен: %w", err)
	}
	return claims.Subject, nil
}

func (service *JWTService) Invalidate(ctx context.Context, tokenStr string) error {
	if err := service.store.Add(ctx, tokenStr); err != nil {
		return util.LogError("не удалось отозвать токен", err)
	}
	return nil
}

// IsInvalidated : при ошибке хранилища токен считается отозванным
func (service *JWTService) IsInvalidated(ctx context.Context, tokenStr string) bool {
	invalidated, err := service.store.Contains(ctx, tokenStr)
	if err != nil {
		util.Logger().Error("ошибка проверки списка отозванных токенов", zap.Error(err))
		return true
	}
	return invalidated
}

func logInvalidToken(err error) {
	var reason string
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		reason = "expired"
	case errors.Is(err, jwt.ErrTokenMalformed):
		reason = "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		reason = "signature"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		reason = "unsupported"
	default:
		reason = "invalid"
	}
	util.Logger().Warn("невалидный токен", zap.String("reason", reason), zap.Error(err))
}
