package fiscal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSubmitterConfig = SubmitterConfig{
	Enabled:      true,
	FiscalNumber: "0000003213047999",
	Company:      domain.FiscalCompany{INN: "01234567890123"},
}

func completedPayment(t *testing.T) *domain.Payment {
	return paymentFor(t, domain.TicketRequest{AmountAdult: 1, Hours: 1}, domain.DefaultPriceConfiguration())
}

func TestSubmitter_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Already fiscalized", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		uuid := "f-uuid"
		p := completedPayment(t)
		p.Fiscalized = true
		p.FiscalUUID = &uuid

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(p, nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
		assert.True(t, res.AlreadyFiscalized)
		assert.Equal(t, "f-uuid", res.UUID)
	})

	t.Run("Payment not completed", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		p := completedPayment(t)
		p.Status = domain.PaymentStatusFailed
		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(p, nil)

		res, err := s.Submit(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
		assert.Nil(t, res)
	})

	t.Run("Disabled", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		cfg := testSubmitterConfig
		cfg.Enabled = false
		s := NewSubmitter(client, payments, cfg, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.False(t, res.Fiscalized)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("Claimed by another submission", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(false, nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.InProgress)
		assert.False(t, res.Fiscalized)
	})

	t.Run("Success", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).Return("tok", nil).Once()
		client.EXPECT().OpenShift(mock.Anything, "tok").Return(nil)
		client.EXPECT().SubmitReceipt(mock.Anything, "tok", mock.MatchedBy(func(r *domain.FiscalReceipt) bool {
			return r.Received == 50000 && r.FiscalNumber == "0000003213047999"
		})).Return(&domain.FiscalReceiptResult{ID: "f-uuid", Link: "https://ofd.kg/f-uuid"}, nil)
		payments.EXPECT().SaveFiscalResult(mock.Anything, int64(1), "f-uuid", "https://ofd.kg/f-uuid").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
		assert.Equal(t, "f-uuid", res.UUID)
	})

	t.Run("Shift open failure does not block submission", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).Return("tok", nil)
		client.EXPECT().OpenShift(mock.Anything, "tok").Return(&domain.FiscalError{Op: "shift_open", Message: "timeout"})
		client.EXPECT().SubmitReceipt(mock.Anything, "tok", mock.Anything).
			Return(&domain.FiscalReceiptResult{ID: "f-uuid"}, nil)
		payments.EXPECT().SaveFiscalResult(mock.Anything, int64(1), "f-uuid", "").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
	})

	t.Run("Shift error reopens shift and retries once", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).Return("tok", nil)
		client.EXPECT().OpenShift(mock.Anything, "tok").Return(nil).Times(2)
		client.EXPECT().SubmitReceipt(mock.Anything, "tok", mock.Anything).
			Return(nil, &domain.FiscalError{Op: "receipt", StatusCode: 400, Message: "Смена превысила 24 часа"}).Once()
		client.EXPECT().CloseShift(mock.Anything, "tok").Return(nil).Once()
		client.EXPECT().SubmitReceipt(mock.Anything, "tok", mock.Anything).
			Return(&domain.FiscalReceiptResult{ID: "f-uuid"}, nil).Once()
		payments.EXPECT().SaveFiscalResult(mock.Anything, int64(1), "f-uuid", "").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
	})

	t.Run("Persistent shift error is bounded", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		shiftErr := &domain.FiscalError{Op: "receipt", StatusCode: 400, Message: "Shift is closed"}

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).Return("tok", nil)
		client.EXPECT().OpenShift(mock.Anything, "tok").Return(nil).Times(2)
		client.EXPECT().CloseShift(mock.Anything, "tok").Return(nil).Once()
		client.EXPECT().SubmitReceipt(mock.Anything, "tok", mock.Anything).Return(nil, shiftErr).Times(2)
		payments.EXPECT().SaveFiscalError(mock.Anything, int64(1), "eKassa: Shift is closed").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.False(t, res.Fiscalized)
		assert.Equal(t, "eKassa: Shift is closed", res.Error)
	})

	t.Run("Expired token is refreshed once", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).Return("old", nil).Once()
		client.EXPECT().OpenShift(mock.Anything, "old").Return(nil)
		client.EXPECT().SubmitReceipt(mock.Anything, "old", mock.Anything).
			Return(nil, &domain.FiscalError{Op: "receipt", StatusCode: http.StatusUnauthorized, Message: "Unauthenticated"})
		client.EXPECT().Login(mock.Anything).Return("new", nil).Once()
		client.EXPECT().SubmitReceipt(mock.Anything, "new", mock.Anything).
			Return(&domain.FiscalReceiptResult{ID: "f-uuid"}, nil)
		payments.EXPECT().SaveFiscalResult(mock.Anything, int64(1), "f-uuid", "").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
	})

	t.Run("Authentication failure is recorded", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		client.EXPECT().Login(mock.Anything).
			Return("", &domain.FiscalError{Op: "login", StatusCode: 401, Message: "Invalid credentials"})
		payments.EXPECT().SaveFiscalError(mock.Anything, int64(1), mock.MatchedBy(func(msg string) bool {
			return strings.HasPrefix(msg, "eKassa: ")
		})).Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.False(t, res.Fiscalized)
		assert.Equal(t, "eKassa: Invalid credentials", res.Error)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrPaymentNotFound)

		_, err := s.Submit(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSubmitter_CloseShift(t *testing.T) {
	ctx := context.Background()

	t.Run("Closes shift", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		s := NewSubmitter(client, mocks.NewPaymentRepositoryMock(t), testSubmitterConfig, zap.NewNop())

		client.EXPECT().Login(mock.Anything).Return("tok", nil)
		client.EXPECT().CloseShift(mock.Anything, "tok").Return(nil)

		assert.NoError(t, s.CloseShift(ctx))
	})

	t.Run("Login error", func(t *testing.T) {
		client := mocks.NewFiscalClientMock(t)
		s := NewSubmitter(client, mocks.NewPaymentRepositoryMock(t), testSubmitterConfig, zap.NewNop())

		client.EXPECT().Login(mock.Anything).Return("", errors.New("auth failed"))

		assert.Error(t, s.CloseShift(ctx))
	})

	t.Run("Disabled", func(t *testing.T) {
		s := NewSubmitter(mocks.NewFiscalClientMock(t), mocks.NewPaymentRepositoryMock(t), SubmitterConfig{}, zap.NewNop())
		assert.NoError(t, s.CloseShift(ctx))
	})
}

func TestSubmitter_ReceiptAttemptBudget(t *testing.T) {
	ctx := context.Background()

	newServer := func(receipt func(call int32, w http.ResponseWriter)) (*Client, *atomic.Int32, *atomic.Int32) {
		var receipts, logins atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/auth/login":
				logins.Add(1)
				w.Write([]byte(`{"access_token":"tok"}`))
			case "/api/v2/receipt":
				receipt(receipts.Add(1), w)
			default:
				w.WriteHeader(http.StatusOK)
			}
		})
		c.http.RetryMax = 4
		return c, &receipts, &logins
	}

	t.Run("Token refresh does not get a fresh retry budget", func(t *testing.T) {
		client, receipts, logins := newServer(func(call int32, w http.ResponseWriter) {
			if call < 5 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"token expired"}`))
		})
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		payments.EXPECT().SaveFiscalError(mock.Anything, int64(1), mock.Anything).Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.False(t, res.Fiscalized)
		assert.NotEmpty(t, res.Error)
		assert.Equal(t, int32(MaxReceiptAttempts), receipts.Load())
		assert.Equal(t, int32(1), logins.Load())
	})

	t.Run("Resubmit after refresh within budget", func(t *testing.T) {
		client, receipts, logins := newServer(func(call int32, w http.ResponseWriter) {
			if call == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"status":"Success","data":{"id":"f-uuid","link":"https://ofd.kg/r/f-uuid"}}`))
		})
		payments := mocks.NewPaymentRepositoryMock(t)
		s := NewSubmitter(client, payments, testSubmitterConfig, zap.NewNop())

		payments.EXPECT().GetByID(mock.Anything, int64(1)).Return(completedPayment(t), nil)
		payments.EXPECT().ClaimFiscal(mock.Anything, int64(1), DefaultClaimLease).Return(true, nil)
		payments.EXPECT().SaveFiscalResult(mock.Anything, int64(1), "f-uuid", "https://ofd.kg/r/f-uuid").Return(nil)

		res, err := s.Submit(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Fiscalized)
		assert.Equal(t, int32(2), receipts.Load())
		assert.Equal(t, int32(2), logins.Load())
	})
}
