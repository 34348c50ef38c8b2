package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
)

func TestGenerateTokenPair(t *testing.T) {
	m := NewJWTManager("test-secret", "nextlearn", time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := m.GenerateTokenPair(userID, []string{"user", "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken.Raw)
	require.NotEmpty(t, pair.RefreshToken.Raw)

	assert.True(t, m.TokenType(pair.AccessToken, AccessTokenType))
	assert.True(t, m.TokenType(pair.RefreshToken, RefreshTokenType))
	assert.False(t, m.TokenType(pair.RefreshToken, AccessTokenType))

	claims, err := m.AccessClaims(pair.AccessToken.Raw)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
}

func TestAccessClaimsRejectsRefreshToken(t *testing.T) {
	m := NewJWTManager("test-secret", "nextlearn", time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = m.AccessClaims(pair.RefreshToken.Raw)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", "nextlearn", time.Minute, time.Hour)
	other := NewJWTManager("other-secret", "nextlearn", time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = other.Parse(pair.AccessToken.Raw)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", "nextlearn", -time.Minute, time.Hour)
	userID := uuid.New()

	_, err := m.GenerateTokenPair(userID, []string{"user"})
	assert.ErrorIs(t, err, app_errors.ErrTokenExpired)
}
