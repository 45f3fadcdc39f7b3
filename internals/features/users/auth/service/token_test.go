package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "ftth_backend/internals/features/users/user/model"
)

const testSecret = "test-secret"

func testUser() userModel.UserModel {
	div := "DEPLOYMENT"
	return userModel.UserModel{
		ID:       uuid.MustParse("7b0e8f7e-3c5e-4a43-9b7a-3f1f0f3a2b11"),
		UserName: "deploy01",
		Role:     "user",
		Division: &div,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	u := testUser()

	raw, err := signToken(buildAccessClaims(u, now, time.Hour), testSecret)
	require.NoError(t, err)

	c, err := ParseToken(raw, testSecret, TokenTypeAccess, now.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, c.Type)
	assert.Equal(t, u.ID, c.UserID)
	assert.Equal(t, "deploy01", c.UserName)
	assert.Equal(t, "user", c.Role)
	assert.Equal(t, "DEPLOYMENT", c.Division)
	assert.Equal(t, now.Add(time.Hour).Unix(), c.ExpiresAt.Unix())
}

func TestParseTokenExpirySkew(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	raw, err := signToken(buildAccessClaims(testUser(), now, time.Minute), testSecret)
	require.NoError(t, err)

	// masih dalam toleransi 30 detik
	_, err = ParseToken(raw, testSecret, TokenTypeAccess, now.Add(time.Minute+20*time.Second))
	require.NoError(t, err)

	_, err = ParseToken(raw, testSecret, TokenTypeAccess, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenRejects(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	access, err := signToken(buildAccessClaims(testUser(), now, time.Hour), testSecret)
	require.NoError(t, err)
	refresh, err := signToken(buildRefreshClaims(testUser().ID, now, time.Hour), testSecret)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseToken(access, "other", TokenTypeAccess, now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("refresh used as access", func(t *testing.T) {
		_, err := ParseToken(refresh, testSecret, TokenTypeAccess, now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseToken("  ", testSecret, TokenTypeAccess, now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("no exp", func(t *testing.T) {
		raw, err := signToken(jwt.MapClaims{"typ": TokenTypeAccess, "sub": testUser().ID.String()}, testSecret)
		require.NoError(t, err)
		_, err = ParseToken(raw, testSecret, TokenTypeAccess, now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("other algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, buildAccessClaims(testUser(), now, time.Hour)).
			SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = ParseToken(raw, testSecret, TokenTypeAccess, now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshTokensAreUnique(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	id := testUser().ID
	a, err := signToken(buildRefreshClaims(id, now, time.Hour), testSecret)
	require.NoError(t, err)
	b, err := signToken(buildRefreshClaims(id, now, time.Hour), testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, computeRefreshHash(a, testSecret), computeRefreshHash(b, testSecret))
	assert.Equal(t, computeRefreshHash(a, testSecret), computeRefreshHash(a, testSecret))
	assert.Len(t, computeRefreshHash(a, testSecret), 32)
}

func TestBlacklistUntil(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	raw, err := signToken(buildAccessClaims(testUser(), now, 2*time.Hour), testSecret)
	require.NoError(t, err)

	assert.Equal(t, now.Add(2*time.Hour+time.Minute).Unix(), blacklistUntil(raw, testSecret, now).Unix())
	assert.Equal(t, now.Add(accessTTLDefault), blacklistUntil("", testSecret, now))
	assert.Equal(t, now.Add(accessTTLDefault), blacklistUntil("garbage", testSecret, now))
	assert.Equal(t, now.Add(3*time.Hour+time.Minute).Unix(), blacklistUntil(raw, testSecret, now.Add(3*time.Hour)).Unix())
}
