package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost используется в тестах для ускорения выполнения
const testCost = bcrypt.MinCost

func TestBCryptHasher_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Valid password", password: "kassa-2026", wantErr: false},
		{name: "Cyrillic password", password: "каток-локомотив", wantErr: false},
		{name: "Empty password", password: "", wantErr: true},
	}

	hasher := NewBCryptHasher(testCost)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
		})
	}
}

func TestBCryptHasher_Check(t *testing.T) {
	hasher := NewBCryptHasher(testCost)
	hash, err := hasher.Hash("kassa-2026")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
		mismatch bool
	}{
		{name: "Correct password", hash: hash, password: "kassa-2026"},
		{name: "Wrong password", hash: hash, password: "kassa-2025", wantErr: true, mismatch: true},
		{name: "Empty password", hash: hash, password: "", wantErr: true, mismatch: true},
		{name: "Empty hash", hash: "", password: "kassa-2026", wantErr: true, mismatch: true},
		{name: "Invalid hash format", hash: "invalid-hash", password: "kassa-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.Check(tt.hash, tt.password)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.mismatch {
				assert.ErrorIs(t, err, ErrMismatch)
			}
		})
	}
}

func TestBCryptHasher_InvalidCost(t *testing.T) {
	// Стоимость вне диапазона заменяется на DefaultCost
	assert.Equal(t, DefaultCost, NewBCryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBCryptHasher(100).cost)
}

func TestBCryptHasher_UniqueHashes(t *testing.T) {
	hasher := NewBCryptHasher(testCost)

	hash1, err := hasher.Hash("kassa-2026")
	require.NoError(t, err)
	hash2, err := hasher.Hash("kassa-2026")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.NoError(t, hasher.Check(hash1, "kassa-2026"))
	assert.NoError(t, hasher.Check(hash2, "kassa-2026"))
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Valid", password: "kassa-2026"},
		{name: "Cyrillic counted by characters", password: "пароль12"},
		{name: "Too short", password: "kassa", wantErr: true},
		{name: "Leading space", password: " kassa-2026", wantErr: true},
		{name: "Too long for bcrypt", password: strings.Repeat("a", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
