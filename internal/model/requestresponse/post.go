package requestresponse

import "auth-web-server/internal/model"

// PostsResponse : список постов
type PostsResponse []model.Post
