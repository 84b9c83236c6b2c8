package handler

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"encoding/json"
	"errors"
	"net/http"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// SignIn godoc
// @Summary Аутентификация пользователя
// @Description Выдает access и refresh токены по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignInRequest true "Тело запроса"
// @Success 200 {object} model.TokensPair
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON"
// @Failure 401 "Неверный email или пароль, тело пустое"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /auth/sign-in [post]
func (h *AuthenticationHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	tokens, err := h.AuthenticationService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrAuthenticationFailed) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		sendInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Обновление access токена
// @Description Выдает новый access токен по refresh токену. Refresh токен возвращается тот же.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} model.TokensPair
// @Failure 400 {object} requestresponse.ErrorResponse "Невалидный refresh токен"
// @Failure 403 {object} requestresponse.ErrorResponse "Refresh токен отозван"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRefreshToken):
			sendErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, model.ErrRefreshTokenInvalidated):
			sendErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, model.ErrIdentityNotFound):
			sendErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			sendInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Выход
// @Description Отзывает refresh токен. Всегда отвечает успехом.
// @Tags Authentication
// @Accept json
// @Produce plain
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {string} string "Logged out successfully"
// @Router /auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// тело не проверяется, logout отвечает успехом на любой запрос
	var req requestresponse.RefreshTokenRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	h.AuthenticationService.Logout(r.Context(), req.RefreshToken)

	writeText(w, http.StatusOK, "Logged out successfully")
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает пользователя, которому принадлежит access токен
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := security.IdentityFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
	})
}
