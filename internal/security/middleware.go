package security

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/util"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

const (
	IdentityContextKey contextKey = "identity"

	bearerPrefix = "Bearer "
)

var ErrUnauthenticated = errors.New("пользователь не авторизован")

// IdentityResolver : находит пользователя по subject из токена
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error)
}

// JWTMiddleware : аутентифицирует запрос по bearer токену.
// Запрос без токена или с невалидным токеном проходит дальше без identity,
// решение о доступе принимает RequireIdentity на уровне роутов.
func JWTMiddleware(tokens ports.TokenService, resolver IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := BearerToken(request)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			// Invalidate принимает токен любого типа, поэтому access токен тоже
			// проверяется по списку отозванных
			ctx := request.Context()
			if !tokens.ValidateKind(token, model.AccessTokenKind) || tokens.IsInvalidated(ctx, token) {
				next.ServeHTTP(writer, request)
				return
			}

			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				util.Logger().Warn("не удалось извлечь subject", zap.Error(err))
				next.ServeHTTP(writer, request)
				return
			}

			identity, err := resolver.ResolveIdentity(ctx, subject)
			if err != nil {
				util.Logger().Warn("не удалось определить пользователя по токену",
					zap.String("subject", subject), zap.Error(err))
				util.HandleError(writer, "не удалось определить пользователя", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithIdentity(ctx, identity)))
		})
	}
}

// RequireIdentity : пропускает только аутентифицированные запросы
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, err := IdentityFromContext(request.Context()); err != nil {
			util.HandleError(writer, ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// BearerToken : токен из заголовка Authorization, только с префиксом "Bearer "
func BearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", false
	}
	return token, true
}

func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (*model.Identity, error) {
	identity, ok := ctx.Value(IdentityContextKey).(*model.Identity)
	if !ok || identity == nil {
		return nil, ErrUnauthenticated
	}
	return identity, nil
}
