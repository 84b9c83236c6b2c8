package handler

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя с email и паролем
// @Tags Users
// @Accept json
// @Produce plain
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {string} string "User added"
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /user/registration [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	_, err := h.UserService.Register(r.Context(), user, req.Password)
	if err != nil {
		var validationErr *model.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeJSON(w, http.StatusBadRequest, requestresponse.ValidationErrorResponse(validationErr.Fields))
		case errors.Is(err, model.ErrUserAlreadyExists):
			sendErrorResponse(w, http.StatusConflict, "пользователь с таким email уже существует")
		default:
			sendInternalError(w, err)
		}
		return
	}

	writeText(w, http.StatusOK, "User added")
}

// GetUserByID godoc
// @Summary Получение пользователя по id
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/{id} [get]
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), id)
	h.writeUser(w, user, err)
}

// GetUserByEmail godoc
// @Summary Получение пользователя по email
// @Tags Users
// @Produce json
// @Param email path string true "Email пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/email/{email} [get]
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	h.writeUser(w, user, err)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, user *model.User, err error) {
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			sendErrorResponse(w, http.StatusNotFound, "пользователь не найден")
			return
		}
		sendInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.UserResponseFromModel(user))
}
