package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// SessionsHandler обрабатывает действия оператора со льдом
type SessionsHandler struct {
	sessionService domain.SessionService
	logger         *zap.Logger
}

// NewSessionsHandler создает новый SessionsHandler
func NewSessionsHandler(sessionService domain.SessionService, logger *zap.Logger) *SessionsHandler {
	return &SessionsHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

type forceFinishRequest struct {
	Reason string `json:"reason"`
}

func (h *SessionsHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Start)
}

func (h *SessionsHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Finish)
}

// ForceFinish принимает необязательную причину досрочного завершения
func (h *SessionsHandler) ForceFinish(w http.ResponseWriter, r *http.Request) {
	var req forceFinishRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	h.transition(w, r, func(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.TransitionResult, error) {
		return h.sessionService.ForceFinish(ctx, actor, paymentID, req.Reason)
	})
}

type transitionFunc func(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.TransitionResult, error)

func (h *SessionsHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	paymentID, err := pathID(r, "paymentID")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	result, err := fn(r.Context(), actor, paymentID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}

func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	session, err := h.sessionService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, session, h.logger)
}

// Dashboard возвращает посетителей по состояниям, ответ не кешируется
func (h *SessionsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	dashboard, err := h.sessionService.Dashboard(r.Context(), actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dashboard, h.logger)
}
