package auth

import (
	"strings"
	"testing"
	"time"

	"realty_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestTokenService(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()
	return NewTokenService(config.AuthConfig{TokenKey: "unit-test-key"}, WithClock(clock.Now))
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestTokenService(t, clock)

	token, err := svc.IssueToken(42, "Jane Realtor")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "Jane Realtor", claims.Name)
	assert.Equal(t, clock.now.Add(config.TokenTTL).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, clock.now.Unix(), claims.IssuedAt.Unix())
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: issuedAt}
	svc := newTestTokenService(t, clock)

	token, err := svc.IssueToken(7, "Buyer")
	require.NoError(t, err)

	clock.now = issuedAt.Add(360000*time.Second - time.Second)
	_, err = svc.VerifyToken(token)
	assert.NoError(t, err, "token must be valid one second before exp")

	clock.now = issuedAt.Add(360000 * time.Second)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token must be rejected exactly at exp")

	clock.now = issuedAt.Add(360000*time.Second + time.Hour)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsForeignAndMalformedTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestTokenService(t, clock)
	other := NewTokenService(config.AuthConfig{TokenKey: "another-key"}, WithClock(clock.Now))

	foreign, err := other.IssueToken(1, "Mallory")
	require.NoError(t, err)

	valid, err := svc.IssueToken(1, "Alice")
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  1,
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1}).SignedString([]byte("unit-test-key"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "not-a-jwt",
		"other key":     foreign,
		"bad signature": tampered,
		"alg none":      noneToken,
		"no exp":        noExp,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService(config.AuthConfig{TokenKey: "k"})
	assert.Equal(t, 100*time.Hour, svc.TTL())
}
