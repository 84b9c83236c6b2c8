package service

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UserService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
}

func NewUserService(userRepository ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
	}
}

// registration : поля, которые проверяются при регистрации
type registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(0, 100)),
		validation.Field(&r.LastName, validation.Length(0, 100)),
		validation.Field(&r.Email, validation.Required.Error("Email is required"), is.Email.Error("Invalid email format")),
		validation.Field(&r.Password, validation.Required.Error("Password is required"), validation.Length(6, 72)),
	)
}

// Register : валидирует данные, хэширует пароль и сохраняет пользователя
func (s *UserService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	user.Email = normalizeEmail(user.Email)

	form := registration{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  password,
	}
	if err := form.Validate(); err != nil {
		return nil, toValidationError(err)
	}

	_, err := s.userRepository.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, model.ErrUserAlreadyExists
	case !errors.Is(err, model.ErrUserNotFound):
		return nil, fmt.Errorf("[UserService] ошибка проверки email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}
	user.PasswordHash = hash

	created, err := s.userRepository.Save(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	return created, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("[UserService] ошибка поиска пользователя: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("[UserService] ошибка поиска пользователя: %w", err)
	}
	return user, nil
}

// normalizeEmail : email хранится и ищется без пробелов по краям
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func toValidationError(err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		fields[field] = fieldErr.Error()
	}
	return &model.ValidationError{Fields: fields}
}
