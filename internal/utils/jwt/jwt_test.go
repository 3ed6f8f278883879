package jwt

import (
	"testing"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		userID    int64
		role      domain.Role
	}{
		{
			name:      "Cashier token",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			userID:    12345,
			role:      domain.RoleCashier,
		},
		{
			name:      "Operator token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			userID:    99999,
			role:      domain.RoleOperator,
		},
		{
			name:      "Zero user ID",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			userID:    0,
			role:      domain.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.userID, tt.role)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	userID := int64(12345)

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, domain.RoleOperator)
		require.NoError(t, err)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, domain.RoleOperator, claims.Role)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(userID, domain.RoleAdmin)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Unknown role", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, domain.Role("ROOT"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(userID, domain.RoleCashier)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Multiple users", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		token1, err := m.Generate(100, domain.RoleCashier)
		require.NoError(t, err)

		token2, err := m.Generate(200, domain.RoleAdmin)
		require.NoError(t, err)

		claims1, err := m.Validate(token1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), claims1.UserID)
		assert.Equal(t, domain.RoleCashier, claims1.Role)

		claims2, err := m.Validate(token2)
		require.NoError(t, err)
		assert.Equal(t, int64(200), claims2.UserID)
		assert.Equal(t, domain.RoleAdmin, claims2.Role)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(12345, domain.RoleCashier)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
