package requestresponse

// SignInRequest : тело запроса на аутентификацию
type SignInRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret"`
}

// RefreshTokenRequest : тело запроса на обновление access токена и на logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	UserID int64  `json:"userId" example:"1"`
	Email  string `json:"email" example:"a@x.com"`
}
