package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// DirectoryHandler подсказки отделов и должностей
type DirectoryHandler struct {
	directoryService domain.DirectoryService
	logger           *zap.Logger
}

// NewDirectoryHandler создает новый DirectoryHandler
func NewDirectoryHandler(directoryService domain.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}

// Search ищет записи справочника {kind} по ?q=
func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	kind := domain.DirectoryKind(chi.URLParam(r, "kind"))
	if kind != domain.DirectoryDepartment && kind != domain.DirectoryPosition {
		writeError(w, r, domain.NewValidationError("kind", "must be department or position"), h.logger)
		return
	}

	entries, err := h.directoryService.Search(r.Context(), actor, kind, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if entries == nil {
		entries = []domain.DirectoryEntry{}
	}

	writeJSON(w, http.StatusOK, entries, h.logger)
}
