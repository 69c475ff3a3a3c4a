package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/celosalong/salon-booking-api/internal/httperr"
)

// TokenTTL is the absolute session lifetime. No refresh, no rotation.
const TokenTTL = 24 * time.Hour

// TokenStore keeps the opaque tokens server side so logout revokes
// immediately. Implementations: in-memory map (default) and Redis.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Valid(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// Guard gates the admin surface with a single fixed credential pair.
type Guard struct {
	username     string
	passwordHash string
	tokens       TokenStore
}

func NewGuard(username, passwordHash string, tokens TokenStore) *Guard {
	return &Guard{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

// Login mints a token on a credential match. The error never reveals which
// field was wrong.
func (g *Guard) Login(ctx context.Context, username, password string) (string, error) {
	match := username == g.username &&
		bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	if !match {
		return "", httperr.ErrBusiness("invalid_credentials")
	}

	token := uuid.NewString()
	if err := g.tokens.Save(ctx, token, TokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Verify is true iff the token is known and unexpired. A lookup miss and an
// expired hit are indistinguishable to the caller.
func (g *Guard) Verify(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := g.tokens.Valid(ctx, token)
	return err == nil && ok
}

// Logout is idempotent.
func (g *Guard) Logout(ctx context.Context, token string) {
	_ = g.tokens.Revoke(ctx, token)
}
