package ports

import (
	"auth-web-server/internal/model"
	"context"
)

// UserRepository : хранилище учетных записей.
// FindByEmail и FindByID возвращают model.ErrUserNotFound, если записи нет.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
}

type UserService interface {
	Register(ctx context.Context, user *model.User, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
