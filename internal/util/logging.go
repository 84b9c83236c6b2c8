package util

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Logger : глобальный логгер приложения, настраивается в config.SetupLogger
func Logger() *zap.Logger {
	return zap.L()
}

// LogError : пишет ошибку в лог и возвращает ее обернутой сообщением
func LogError(message string, err error) error {
	Logger().Error(message, zap.Error(err))
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : общий ответ для непредвиденных ошибок, без внутренних деталей
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
