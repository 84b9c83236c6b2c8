package handler

import (
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/util"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		util.Logger().Error("ошибка кодирования ответа", zap.Error(err))
	}
}

func writeText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(text))
}

// sendInternalError : непредвиденная ошибка, детали остаются только в логе
func sendInternalError(w http.ResponseWriter, err error) {
	util.Logger().Error("внутренняя ошибка сервера", zap.Error(err))
	util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
}
