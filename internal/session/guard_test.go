package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/celosalong/salon-booking-api/internal/httperr"
)

func newTestGuard(t *testing.T) (*Guard, *MemoryTokenStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("celo2024"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := NewMemoryTokenStore()
	return NewGuard("admin", string(hash), tokens), tokens
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "correct credentials", username: "admin", password: "celo2024"},
		{name: "wrong password", username: "admin", password: "celo2025", wantErr: true},
		{name: "wrong username", username: "root", password: "celo2024", wantErr: true},
		{name: "both wrong", username: "root", password: "toor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, _ := newTestGuard(t)
			ctx := context.Background()

			token, err := guard.Login(ctx, tt.username, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "invalid_credentials", httperr.BusinessCode(err))
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.True(t, guard.Verify(ctx, token))
		})
	}
}

func TestVerify(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	assert.False(t, guard.Verify(ctx, ""))
	assert.False(t, guard.Verify(ctx, "never-issued"))
}

func TestVerifyExpiredToken(t *testing.T) {
	guard, tokens := newTestGuard(t)
	ctx := context.Background()

	token, err := guard.Login(ctx, "admin", "celo2024")
	require.NoError(t, err)
	require.True(t, guard.Verify(ctx, token))

	tokens.Now = func() time.Time {
		return time.Now().Add(TokenTTL + time.Minute)
	}

	assert.False(t, guard.Verify(ctx, token))
}

func TestLogout(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	token, err := guard.Login(ctx, "admin", "celo2024")
	require.NoError(t, err)

	guard.Logout(ctx, token)
	assert.False(t, guard.Verify(ctx, token))

	// Revoking twice is a no-op.
	guard.Logout(ctx, token)
	assert.False(t, guard.Verify(ctx, token))
}
