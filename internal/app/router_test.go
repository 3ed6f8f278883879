package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	domainmocks "github.com/lokomotiv/rink-ticketing/internal/domain/mocks"
	"github.com/lokomotiv/rink-ticketing/internal/handlers"
	"github.com/lokomotiv/rink-ticketing/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

type testRouter struct {
	router   *chi.Mux
	jwt      *jwt.Manager
	payments *domainmocks.PaymentServiceMock
	sessions *domainmocks.SessionServiceMock
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	logger := zap.NewNop()
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	payments := domainmocks.NewPaymentServiceMock(t)
	sessions := domainmocks.NewSessionServiceMock(t)

	h := &handlerSet{
		auth:      handlers.NewAuthHandler(domainmocks.NewAuthServiceMock(t), logger),
		payments:  handlers.NewPaymentsHandler(payments, logger),
		sessions:  handlers.NewSessionsHandler(sessions, logger),
		reports:   handlers.NewReportsHandler(domainmocks.NewReportServiceMock(t), time.UTC, logger),
		config:    handlers.NewConfigHandler(domainmocks.NewConfigServiceMock(t), logger),
		directory: handlers.NewDirectoryHandler(domainmocks.NewDirectoryServiceMock(t), logger),
		health:    handlers.NewHealthHandler(okPinger{}, logger),
	}

	return &testRouter{
		router:   setupRouter(h, jwtManager, logger),
		jwt:      jwtManager,
		payments: payments,
		sessions: sessions,
	}
}

func (tr *testRouter) authorized(t *testing.T, req *http.Request, role domain.Role) *http.Request {
	t.Helper()
	token, err := tr.jwt.Generate(7, role)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSetupRouter_Routes(t *testing.T) {
	tr := newTestRouter(t)

	var routes []string
	err := chi.Walk(tr.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(routes)

	for _, want := range []string{
		"GET /health",
		"GET /ready",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"POST /api/payments/",
		"POST /api/payments/quote",
		"GET /api/payments/last",
		"GET /api/payments/{id}",
		"PUT /api/payments/{id}",
		"POST /api/payments/{id}/fiscalize",
		"POST /api/sessions/{paymentID}/start",
		"POST /api/sessions/{paymentID}/finish",
		"POST /api/sessions/{paymentID}/force-finish",
		"GET /api/sessions/{id}",
		"GET /api/dashboard",
		"GET /api/reports/sessions",
		"GET /api/reports/weekly",
		"GET /api/reports/monthly",
		"GET /api/reports/yearly",
		"GET /api/config/prices",
		"PATCH /api/config/prices",
		"GET /api/directory/{kind}",
	} {
		assert.Contains(t, routes, want)
	}
}

func TestSetupRouter_Public(t *testing.T) {
	tr := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRouter_RequiresToken(t *testing.T) {
	tr := newTestRouter(t)

	for _, path := range []string{"/api/payments/last", "/api/dashboard", "/api/reports/weekly", "/api/config/prices"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		tr.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestSetupRouter_LastIsNotAnID(t *testing.T) {
	tr := newTestRouter(t)

	payment := &domain.Payment{ID: 42, ChequeCode: "CH0000ABCD"}
	tr.payments.EXPECT().GetLastPayment(mock.Anything, mock.MatchedBy(func(a domain.Actor) bool {
		return a.UserID == 7 && a.Role == domain.RoleCashier
	})).Return(payment, nil).Once()

	req := tr.authorized(t, httptest.NewRequest(http.MethodGet, "/api/payments/last", nil), domain.RoleCashier)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Payment
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, int64(42), got.ID)
}

func TestSetupRouter_DashboardNotCached(t *testing.T) {
	tr := newTestRouter(t)

	tr.sessions.EXPECT().Dashboard(mock.Anything, mock.Anything).Return(&domain.Dashboard{}, nil).Once()

	req := tr.authorized(t, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), domain.RoleOperator)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}
