package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

func testTokenService() *TokenService {
	return NewTokenService(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExp:     time.Hour,
		RefreshExp:    240 * time.Hour,
		Issuer:        "studentvault.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "jdoe",
		Email:    "jdoe@example.com",
		FullName: "Jane Doe",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := testTokenService()
	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "jdoe@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.FullName)
	assert.Equal(t, "studentvault.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := testTokenService()
	token, err := svc.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokenKindSeparation(t *testing.T) {
	t.Parallel()

	svc := testTokenService()
	user := testUser()

	accessToken, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	// The secrets are independent, so tokens fail cross-validation on signature.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.True(t, errors.Is(err, apperrors.ErrTokenSignature))

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.True(t, errors.Is(err, apperrors.ErrTokenSignature))
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExp:     -time.Minute,
		RefreshExp:    -time.Minute,
		Issuer:        "studentvault.test",
	})

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestWrongSecret(t *testing.T) {
	t.Parallel()

	svc := testTokenService()
	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	other := NewTokenService(TokenConfig{
		AccessSecret:  "a-completely-different-secret",
		RefreshSecret: "another-different-secret",
		AccessExp:     time.Hour,
		RefreshExp:    time.Hour,
	})

	_, err = other.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenSignature))
}

func TestMalformedToken(t *testing.T) {
	t.Parallel()

	svc := testTokenService()

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.ValidateAccessToken(token)
		assert.True(t, errors.Is(err, apperrors.ErrTokenMalformed), "token %q", token)
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.Error(t, err)
}
