package httpjson

import (
	"encoding/json"
	"net/http"

	"laundry/internal/generated/dto"
	"laundry/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Write отправляет body как JSON с указанным статусом.
func Write(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
			logger.NewField("status", status),
		)
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	Write(w, log, status, dto.ErrorResponse{Error: message})
}

func ErrorWithDetails(w http.ResponseWriter, log errorLogger, status int, message, details string) {
	Write(w, log, status, dto.ErrorResponse{Error: message, Details: &details})
}
