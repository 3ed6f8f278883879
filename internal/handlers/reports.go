package handlers

import (
	"net/http"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/service"
	"go.uber.org/zap"
)

const reportDateLayout = "2006-01-02"

// ReportsHandler обрабатывает отчеты по сеансам
type ReportsHandler struct {
	reportService domain.ReportService
	location      *time.Location
	logger        *zap.Logger
}

// NewReportsHandler создает новый ReportsHandler. Даты запроса читаются в часовом поясе катка.
func NewReportsHandler(reportService domain.ReportService, location *time.Location, logger *zap.Logger) *ReportsHandler {
	if location == nil {
		location = time.Local
	}
	return &ReportsHandler{
		reportService: reportService,
		location:      location,
		logger:        logger,
	}
}

// Sessions строит отчет за период ?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportsHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	from, err := h.parseDate(r, "from")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	to, err := h.parseDate(r, "to")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	report, err := h.reportService.SessionReport(r.Context(), actor, from, to)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *ReportsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	h.rolling(w, r, service.WeeklyReportDays)
}

func (h *ReportsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	h.rolling(w, r, service.MonthlyReportDays)
}

func (h *ReportsHandler) Yearly(w http.ResponseWriter, r *http.Request) {
	h.rolling(w, r, service.YearlyReportDays)
}

func (h *ReportsHandler) rolling(w http.ResponseWriter, r *http.Request, days int) {
	actor, ok := GetActor(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	report, err := h.reportService.RollingReport(r.Context(), actor, days)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *ReportsHandler) parseDate(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, domain.NewValidationError(name, "is required")
	}

	t, err := time.ParseInLocation(reportDateLayout, value, h.location)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
