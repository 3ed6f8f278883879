package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error     string     `json:"error"`
	Field     string     `json:"field,omitempty"`
	VisitedAt *time.Time `json:"visited_at,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError переводит ошибку сервиса в HTTP статус
func writeError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	resp := ErrorResponse{Error: err.Error()}

	var (
		vErr   *domain.ValidationError
		dupErr *domain.DuplicateVisitError
		gwErr  *domain.GatewayError
		status int
	)

	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		resp.Field = vErr.Field
	case errors.As(err, &dupErr):
		status = http.StatusBadRequest
		resp.VisitedAt = &dupErr.VisitedAt
	case errors.As(err, &gwErr):
		status = http.StatusBadRequest
		resp.Error = gwErr.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrBusinessRule):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrPermission):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	default:
		requestID, _ := r.Context().Value(RequestIDKey).(string)
		logger.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		resp.Error = http.StatusText(status)
	}

	writeJSON(w, status, resp, logger)
}

func writeMessage(w http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	writeJSON(w, status, ErrorResponse{Error: msg}, logger)
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathID читает положительный числовой параметр маршрута
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
