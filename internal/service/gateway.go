package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/utils/retrylog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Статусы транзакции MegaPay
const (
	GatewayStatusCompleted = "COMPLETED"
	GatewayStatusPending   = "PENDING"
	GatewayStatusFailed    = "FAILED"
)

// SimulatedRedirectURL адрес страницы оплаты симулятора
const SimulatedRedirectURL = "https://megapay.kz/payment/"

// MegaPayClient реализует domain.PaymentGateway поверх HTTP API MegaPay
type MegaPayClient struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewMegaPayClient создает новый MegaPayClient
func NewMegaPayClient(baseURL string, timeout time.Duration, logger *zap.Logger) *MegaPayClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = timeout
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = retrylog.New(logger)

	return &MegaPayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

type initiateRequest struct {
	Amount      string `json:"amount"`
	OrderID     string `json:"order_id"`
	Description string `json:"description"`
}

type gatewayResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	RedirectURL   string `json:"redirect_url"`
	Error         string `json:"error"`
	Message       string `json:"message"`
}

func (r gatewayResponse) result() *domain.GatewayResult {
	status := strings.ToUpper(r.Status)
	msg := r.Error
	if msg == "" {
		msg = r.Message
	}
	return &domain.GatewayResult{
		Success:       status == GatewayStatusCompleted || status == GatewayStatusPending,
		TransactionID: r.TransactionID,
		RedirectURL:   r.RedirectURL,
		Status:        status,
		Error:         msg,
	}
}

// Initiate создает транзакцию оплаты. Запрос не повторяется, чтобы не списать деньги дважды.
func (c *MegaPayClient) Initiate(ctx context.Context, amount decimal.Decimal, orderID, description string) (*domain.GatewayResult, error) {
	body, err := json.Marshal(initiateRequest{
		Amount:      amount.StringFixed(2),
		OrderID:     orderID,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	return decodeGatewayResponse(resp)
}

// CheckStatus запрашивает состояние транзакции
func (c *MegaPayClient) CheckStatus(ctx context.Context, transactionID string) (*domain.GatewayResult, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	return decodeGatewayResponse(resp)
}

func decodeGatewayResponse(resp *http.Response) (*domain.GatewayResult, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("megapay client: failed to read response: %w", err)
	}

	var gr gatewayResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &domain.GatewayResult{Status: GatewayStatusFailed, Error: http.StatusText(resp.StatusCode)}, nil
		}
		return nil, fmt.Errorf("megapay client: failed to decode response: %w", err)
	}

	res := gr.result()
	if resp.StatusCode >= http.StatusBadRequest {
		res.Success = false
		if res.Error == "" {
			res.Error = http.StatusText(resp.StatusCode)
		}
	}
	return res, nil
}

// SimulatedGateway подтверждает любую оплату без обращения к MegaPay
type SimulatedGateway struct{}

// NewSimulatedGateway создает новый SimulatedGateway
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

// Initiate возвращает успешную транзакцию MP<orderID>
func (g *SimulatedGateway) Initiate(_ context.Context, _ decimal.Decimal, orderID, _ string) (*domain.GatewayResult, error) {
	txID := "MP" + orderID
	return &domain.GatewayResult{
		Success:       true,
		TransactionID: txID,
		RedirectURL:   SimulatedRedirectURL + txID,
		Status:        GatewayStatusCompleted,
	}, nil
}

// CheckStatus всегда сообщает о завершенной транзакции
func (g *SimulatedGateway) CheckStatus(_ context.Context, transactionID string) (*domain.GatewayResult, error) {
	return &domain.GatewayResult{
		Success:       true,
		TransactionID: transactionID,
		Status:        GatewayStatusCompleted,
	}, nil
}
