package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrAuthenticationFailed    = errors.New("email or password is not correct")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrRefreshTokenInvalidated = errors.New("refresh token is invalidated")
	ErrIdentityNotFound        = errors.New("identity not found")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ValidationError : ошибки валидации входных данных в виде поле -> сообщение
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
