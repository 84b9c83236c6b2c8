package service

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PostService struct {
	postRepository ports.PostRepository
	archive        ports.PostArchive
	client         *http.Client
	sourceURL      string
	maxBodyBytes   int64
	now            func() time.Time
}

// NewPostService : archive может быть nil, тогда сырые ответы не сохраняются
func NewPostService(
	postRepository ports.PostRepository,
	archive ports.PostArchive,
	sourceURL string,
	timeout time.Duration,
	maxBodyBytes int64,
) *PostService {
	return &PostService{
		postRepository: postRepository,
		archive:        archive,
		client:         &http.Client{Timeout: timeout},
		sourceURL:      sourceURL,
		maxBodyBytes:   maxBodyBytes,
		now:            time.Now,
	}
}

// FetchAndSave : загружает посты из внешнего источника и сохраняет их
func (s *PostService) FetchAndSave(ctx context.Context) ([]model.Post, error) {
	payload, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var posts []model.Post
	if err := json.Unmarshal(payload, &posts); err != nil {
		return nil, util.LogError("[PostService] ошибка разбора ответа источника", err)
	}

	if s.archive != nil {
		key := fmt.Sprintf("posts/%s.json", s.now().UTC().Format("20060102T150405Z"))
		if err := s.archive.Archive(ctx, key, payload); err != nil {
			util.Logger().Warn("[PostService] не удалось сохранить ответ в архив", zap.String("key", key), zap.Error(err))
		}
	}

	saved, err := s.postRepository.SaveAll(ctx, posts)
	if err != nil {
		return nil, fmt.Errorf("[PostService] ошибка сохранения постов: %w", err)
	}

	return saved, nil
}

func (s *PostService) GetAll(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("[PostService] ошибка получения постов: %w", err)
	}
	return posts, nil
}

func (s *PostService) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("[PostService] ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, util.LogError("[PostService] ошибка запроса к источнику постов", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[PostService] источник постов ответил статусом %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes+1))
	if err != nil {
		return nil, util.LogError("[PostService] ошибка чтения ответа источника", err)
	}
	if int64(len(body)) > s.maxBodyBytes {
		return nil, fmt.Errorf("[PostService] ответ источника больше %d байт", s.maxBodyBytes)
	}

	return body, nil
}
