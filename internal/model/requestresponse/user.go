package requestresponse

import (
	"auth-web-server/internal/model"
	"time"
)

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	FirstName string `json:"firstName" example:"Ivan"`
	LastName  string `json:"lastName" example:"Ivanov"`
	Email     string `json:"email" example:"a@x.com"`
	Password  string `json:"password" example:"secret123"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"invalid request body"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ValidationErrorResponse : ошибки валидации, поле -> сообщение
type ValidationErrorResponse map[string]string

// UserResponse : данные пользователя без хэша пароля
type UserResponse struct {
	UserID    int64  `json:"userId" example:"1"`
	FirstName string `json:"firstName" example:"Ivan"`
	LastName  string `json:"lastName" example:"Ivanov"`
	Email     string `json:"email" example:"a@x.com"`
	CreatedAt string `json:"createdAt" example:"2025-08-23T12:34:56Z"`
}

// UserResponseFromModel : конвертирует model.User в UserResponse
func UserResponseFromModel(user *model.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
