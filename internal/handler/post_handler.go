package handler

import (
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"net/http"
)

type PostHandler struct {
	ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService}
}

// FetchPosts godoc
// @Summary Загрузка постов
// @Description Загружает посты из внешнего источника и сохраняет их в БД
// @Tags Posts
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} model.Post
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/posts/fetch [get]
func (h *PostHandler) FetchPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.FetchAndSave(r.Context())
	if err != nil {
		sendInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.PostsResponse(posts))
}

// GetAllPosts godoc
// @Summary Все посты
// @Description Возвращает все сохраненные посты
// @Tags Posts
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} model.Post
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/posts [get]
func (h *PostHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAll(r.Context())
	if err != nil {
		sendInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.PostsResponse(posts))
}
