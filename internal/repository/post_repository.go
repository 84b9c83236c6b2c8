package repository

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"context"

	"github.com/jmoiron/sqlx"
)

type PostRepository struct {
	*config.Database
}

func NewPostRepository(database *config.Database) *PostRepository {
	return &PostRepository{database}
}

// SaveAll : сохраняет посты в одной транзакции, существующие по id перезаписываются
func (r *PostRepository) SaveAll(ctx context.Context, posts []model.Post) ([]model.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, title, body)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET user_id = EXCLUDED.user_id, title = EXCLUDED.title, body = EXCLUDED.body
	`

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, util.LogError("[PostRepo] не удалось начать транзакцию", err)
	}
	defer tx.Rollback()

	for _, post := range posts {
		if _, err := tx.ExecContext(ctx, query, post.ID, post.UserID, post.Title, post.Body); err != nil {
			return nil, util.LogError("[PostRepo] ошибка вставки поста", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, util.LogError("[PostRepo] не удалось зафиксировать транзакцию", err)
	}

	return posts, nil
}

// FindAll : все посты по возрастанию id
func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	query := `SELECT id, user_id, title, body FROM posts ORDER BY id ASC`

	posts := []model.Post{}
	if err := sqlx.SelectContext(ctx, r.DB, &posts, query); err != nil {
		return nil, util.LogError("[PostRepo] не удалось получить список постов", err)
	}
	return posts, nil
}
