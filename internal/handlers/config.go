package handlers

import (
	"net/http"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// ConfigHandler обрабатывает тарифы
type ConfigHandler struct {
	configService domain.ConfigService
	logger        *zap.Logger
}

// NewConfigHandler создает новый ConfigHandler
func NewConfigHandler(configService domain.ConfigService, logger *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
		logger:        logger,
	}
}

func (h *ConfigHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	cfg, err := h.configService.Get(r.Context(), actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cfg, h.logger)
}

// UpdatePrices применяет частичное изменение тарифов
func (h *ConfigHandler) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var patch domain.PriceConfigurationPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	cfg, err := h.configService.Update(r.Context(), actor, patch)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cfg, h.logger)
}
