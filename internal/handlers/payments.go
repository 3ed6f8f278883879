package handlers

import (
	"net/http"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// PaymentsHandler обрабатывает продажу билетов
type PaymentsHandler struct {
	paymentService domain.PaymentService
	logger         *zap.Logger
}

// NewPaymentsHandler создает новый PaymentsHandler
func NewPaymentsHandler(paymentService domain.PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Quote рассчитывает стоимость билета без оплаты
func (h *PaymentsHandler) Quote(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var req domain.TicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	breakdown, err := h.paymentService.Quote(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, breakdown, h.logger)
}

// Create оформляет и оплачивает билет
func (h *PaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var req domain.TicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, payment, h.logger)
}

// Update изменяет последний билет
func (h *PaymentsHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req domain.TicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	payment, err := h.paymentService.UpdatePayment(r.Context(), actor, id, req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payment, h.logger)
}

// Get возвращает оплату по ID
func (h *PaymentsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	payment, err := h.paymentService.GetPayment(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payment, h.logger)
}

// Last возвращает последнюю оплату
func (h *PaymentsHandler) Last(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	payment, err := h.paymentService.GetLastPayment(r.Context(), actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payment, h.logger)
}

// Fiscalize повторно отправляет чек в eKassa
func (h *PaymentsHandler) Fiscalize(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.paymentService.Fiscalize(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}
