package repository

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// Save : сохраняет нового пользователя, возвращает его с user_id и created_at
func (r *UserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (first_name, last_name, email, password)
	VALUES ($1, $2, $3, $4)
	RETURNING user_id, created_at
	`

	created := *user
	err := r.DB.QueryRowxContext(ctx, query, user.FirstName, user.LastName, user.Email, user.PasswordHash).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, model.ErrUserAlreadyExists
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return &created, nil
}

// FindByID : ищет пользователя по user_id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT user_id, first_name, last_name, email, password, created_at FROM users WHERE user_id = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT user_id, first_name, last_name, email, password, created_at FROM users WHERE email = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}
