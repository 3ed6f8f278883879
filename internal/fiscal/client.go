// Package fiscal отправляет чеки оплат в фискальный сервис eKassa.
package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/utils/retrylog"
	"go.uber.org/zap"
)

const (
	loginTimeout    = 10 * time.Second
	maxResponseSize = 1 << 20
)

// ClientConfig параметры подключения к eKassa
type ClientConfig struct {
	BaseURL      string
	Email        string
	Password     string
	FiscalNumber string
	Timeout      time.Duration
	RetryMax     int
}

// Client реализует domain.FiscalClient поверх HTTP API eKassa
type Client struct {
	cfg    ClientConfig
	http   *retryablehttp.Client
	logger *zap.Logger
}

// NewClient создает новый Client
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.CheckRetry = checkRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = retrylog.New(logger)

	return &Client{
		cfg:    cfg,
		http:   rc,
		logger: logger,
	}
}

// checkRetry повторяет сетевые ошибки и ответы, после которых чек точно не зарегистрирован.
// 500 не повторяется: сервис мог успеть выбить чек.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	more := true
	if b := attemptBudgetFrom(ctx); b != nil {
		more = b.spend()
	}
	if err != nil {
		retry, checkErr := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		return retry && more, checkErr
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return more, nil
	}
	return false, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenFields struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

type loginResponse struct {
	tokenFields
	Data *tokenFields `json:"data"`
}

func (r loginResponse) token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	if r.Token != "" {
		return r.Token
	}
	if r.Data != nil {
		if r.Data.AccessToken != "" {
			return r.Data.AccessToken
		}
		return r.Data.Token
	}
	return ""
}

// Login получает токен доступа
func (c *Client) Login(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	status, body, err := c.post(ctx, "/auth/login", "", loginRequest{Email: c.cfg.Email, Password: c.cfg.Password})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFiscalAuthentication, &domain.FiscalError{Op: "login", Message: err.Error()})
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("%w: %w", domain.ErrFiscalAuthentication,
			&domain.FiscalError{Op: "login", StatusCode: status, Message: remoteMessage(status, body)})
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFiscalAuthentication,
			&domain.FiscalError{Op: "login", StatusCode: status, Message: "invalid response: " + err.Error()})
	}

	token := resp.token()
	if token == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrFiscalAuthentication,
			&domain.FiscalError{Op: "login", StatusCode: status, Message: "token not found in response"})
	}

	return token, nil
}

type shiftRequest struct {
	FiscalNumber string `json:"fiscal_number"`
}

// OpenShift открывает смену. Уже открытая смена не считается ошибкой.
func (c *Client) OpenShift(ctx context.Context, token string) error {
	return c.shift(ctx, "shift_open", "/shift_open_by_fiscal_number", token, "already open", "уже открыт")
}

// CloseShift закрывает смену. Уже закрытая смена не считается ошибкой.
func (c *Client) CloseShift(ctx context.Context, token string) error {
	return c.shift(ctx, "shift_close", "/shift_close_by_fiscal_number", token, "already closed", "уже закрыт", "not open", "не открыт")
}

func (c *Client) shift(ctx context.Context, op, path, token string, benign ...string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	status, body, err := c.post(ctx, path, token, shiftRequest{FiscalNumber: c.cfg.FiscalNumber})
	if err != nil {
		return &domain.FiscalError{Op: op, Message: err.Error()}
	}
	if isSuccess(status) {
		return nil
	}

	msg := remoteMessage(status, body)
	lower := strings.ToLower(msg)
	for _, b := range benign {
		if strings.Contains(lower, b) {
			return nil
		}
	}

	return &domain.FiscalError{Op: op, StatusCode: status, Message: msg}
}

type receiptResponse struct {
	Status string                      `json:"status"`
	Data   *domain.FiscalReceiptResult `json:"data"`
}

// SubmitReceipt регистрирует чек прихода
func (c *Client) SubmitReceipt(ctx context.Context, token string, receipt *domain.FiscalReceipt) (*domain.FiscalReceiptResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	status, body, err := c.post(ctx, "/v2/receipt", token, receipt)
	if err != nil {
		return nil, &domain.FiscalError{Op: "receipt", Message: err.Error()}
	}

	var resp receiptResponse
	if isSuccess(status) && json.Unmarshal(body, &resp) == nil &&
		strings.EqualFold(resp.Status, "success") && resp.Data != nil && resp.Data.ID != "" {
		return resp.Data, nil
	}

	return nil, &domain.FiscalError{Op: "receipt", StatusCode: status, Message: remoteMessage(status, body)}
}

// post отправляет JSON и возвращает код ответа и тело
func (c *Client) post(ctx context.Context, path, token string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// remoteMessage извлекает текст ошибки из произвольного ответа сервиса
func remoteMessage(status int, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			switch v := payload[key].(type) {
			case string:
				if v != "" {
					return v
				}
			case map[string]any:
				if m, ok := v["message"].(string); ok && m != "" {
					return m
				}
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}
	if len([]rune(text)) > 200 {
		text = string([]rune(text)[:200])
	}
	return text
}
