package jwt

import (
	"testing"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/pkg/ttlstore"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store := ttlstore.New(time.Minute)
	t.Cleanup(store.Close)
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h", store)
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService(t)

	token, expiresAt, err := svc.GenerateAccessToken("u1", "technician")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	parsed, err := jwt.Parse([]byte(token), jwt.WithVerify(false))
	require.NoError(t, err)
	userID, _ := parsed.Get("user_id")
	assert.Equal(t, "u1", userID)
	tokenType, _ := parsed.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	parsed, err := jwt.Parse([]byte(token), jwt.WithVerify(false))
	require.NoError(t, err)
	tokenType, _ := parsed.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestRevocation(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateAccessToken("u1", "technician")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}
