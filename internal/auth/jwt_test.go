// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstyle/api/internal/config"
	"github.com/smartstyle/api/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "test-secret-at-least-32-bytes-long!!",
		TokenExpire: 24 * time.Hour,
		Issuer:      "smartstyle-api",
	}
}

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()

	issuer, err := NewTokenIssuer(testJWTConfig())
	require.NoError(t, err)
	return issuer
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)

	issued, err := issuer.CreateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)

	claims, err := issuer.VerifyToken(context.Background(), issued.Token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.NotEmpty(t, claims.JTI)
}

func TestTokenIssuer_ExpiresAfterConfiguredDuration(t *testing.T) {
	issuer := newTestIssuer(t)

	issuedAt := time.Now()
	issuer.now = func() time.Time { return issuedAt }

	issued, err := issuer.CreateToken("user-123")
	require.NoError(t, err)

	assert.WithinDuration(t, issuedAt.Add(24*time.Hour), issued.ExpiresAt,
		time.Second)

	// Still valid one hour before expiry.
	issuer.now = func() time.Time { return issuedAt.Add(23 * time.Hour) }
	_, err = issuer.VerifyToken(context.Background(), issued.Token)
	require.NoError(t, err)

	// Rejected one hour past expiry.
	issuer.now = func() time.Time { return issuedAt.Add(25 * time.Hour) }
	_, err = issuer.VerifyToken(context.Background(), issued.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestTokenIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := newTestIssuer(t)

	issued, err := issuer.CreateToken("user-123")
	require.NoError(t, err)

	tampered := []byte(issued.Token)
	tampered[len(tampered)-1] ^= 0x01

	_, err = issuer.VerifyToken(context.Background(), string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	issuer := newTestIssuer(t)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-signing-secret!!"
	other, err := NewTokenIssuer(otherCfg)
	require.NoError(t, err)

	issued, err := other.CreateToken("user-123")
	require.NoError(t, err)

	_, err = issuer.VerifyToken(context.Background(), issued.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := newTestIssuer(t)

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := issuer.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, core.ErrTokenInvalid)
	}
}
