package ports

import (
	"auth-web-server/internal/model"
	"context"
)

type PostRepository interface {
	SaveAll(ctx context.Context, posts []model.Post) ([]model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
}

type PostService interface {
	FetchAndSave(ctx context.Context) ([]model.Post, error)
	GetAll(ctx context.Context) ([]model.Post, error)
}

// PostArchive : архив сырых ответов внешнего источника постов
type PostArchive interface {
	Archive(ctx context.Context, key string, payload []byte) error
}
