package scope_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-inventory/internal/model"
	"fridge-inventory/pkg/scope"
)

func TestManager_RoundTrip(t *testing.T) {
	m := scope.New("0123456789abcdef0123456789abcdef", "fridge", time.Hour)

	token, err := m.CreateToken(model.Scope{UserID: "u-1", Username: "ala"})
	require.NoError(t, err)

	sc, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", sc.UserID)
	assert.Equal(t, "ala", sc.Username)
}

func TestManager_Verify(t *testing.T) {
	m := scope.New("secret-a-secret-a-secret-a-secret", "fridge", time.Hour)
	other := scope.New("secret-b-secret-b-secret-b-secret", "fridge", time.Hour)
	wrongIssuer := scope.New("secret-a-secret-a-secret-a-secret", "someone-else", time.Hour)
	expired := scope.New("secret-a-secret-a-secret-a-secret", "fridge", -time.Minute)

	foreign, err := other.CreateToken(model.Scope{UserID: "u-1"})
	require.NoError(t, err)
	issuerTok, err := wrongIssuer.CreateToken(model.Scope{UserID: "u-1"})
	require.NoError(t, err)
	expiredTok, err := expired.CreateToken(model.Scope{UserID: "u-1"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", scope.ErrEmptyToken},
		{"garbage", "not-a-jwt", scope.ErrInvalidToken},
		{"wrong secret", foreign, scope.ErrInvalidToken},
		{"wrong issuer", issuerTok, scope.ErrInvalidToken},
		{"expired", expiredTok, scope.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestScopeContext(t *testing.T) {
	_, ok := scope.GetScopeFromContext(context.Background())
	assert.False(t, ok)

	ctx := scope.SetScopeToContext(context.Background(), model.Scope{UserID: "u-2"})
	sc, ok := scope.GetScopeFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-2", sc.UserID)
}
