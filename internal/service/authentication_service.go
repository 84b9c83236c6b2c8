package service

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/util"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
	hasher         ports.PasswordHasher
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	tokenService ports.TokenService,
	hasher ports.PasswordHasher,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
	}
}

// SignIn : проверяет email и пароль и выдает пару токенов.
// Неизвестный email и неверный пароль дают одну и ту же ошибку model.ErrAuthenticationFailed.
func (s *AuthenticationService) SignIn(ctx context.Context, email, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, model.ErrAuthenticationFailed
	}

	tokens, err := s.tokenService.IssueTokenPair(user.Email)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	return tokens, nil
}

// Refresh выдает новый access токен по refresh токену.
// Проверки идут строго по порядку:
//  1. подпись, срок действия и тип токена -> model.ErrInvalidRefreshToken
//  2. список отозванных токенов -> model.ErrRefreshTokenInvalidated
//  3. пользователь из subject существует -> model.ErrIdentityNotFound
//
// Refresh токен не ротируется: в ответе возвращается он же.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" || !s.tokenService.ValidateKind(refreshToken, model.RefreshTokenKind) {
		return nil, model.ErrInvalidRefreshToken
	}

	if s.tokenService.IsInvalidated(ctx, refreshToken) {
		return nil, model.ErrRefreshTokenInvalidated
	}

	subject, err := s.tokenService.ExtractSubject(refreshToken)
	if err != nil {
		return nil, model.ErrIdentityNotFound
	}

	identity, err := s.ResolveIdentity(ctx, subject)
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokenService.Refresh(identity.Email, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	return tokens, nil
}

// Logout : отзывает refresh токен, если он валиден.
// Невалидный или чужой токен молча игнорируется, повторный вызов безопасен.
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" || !s.tokenService.ValidateKind(refreshToken, model.RefreshTokenKind) {
		return
	}

	if err := s.tokenService.Invalidate(ctx, refreshToken); err != nil {
		util.Logger().Error("logout: не удалось отозвать токен", zap.Error(err))
	}
}

// ResolveIdentity : пользователь по subject токена
func (s *AuthenticationService) ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error) {
	user, err := s.userRepository.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	return user.Identity(), nil
}
