package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

// TokenConfig defines signing secrets and expiry policies for both token kinds.
// It is built once at startup and passed into NewTokenService; core logic never
// reads ambient process state.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExp     time.Duration
	RefreshExp    time.Duration
	Issuer        string
}

// TokenService issues and validates signed access and refresh tokens.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new token service
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// AccessClaims defines access token content: enough identity to serve a
// request without a user lookup.
type AccessClaims struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// RefreshClaims defines refresh token content: the user id and nothing else.
type RefreshClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a short-lived access token for the user.
func (s *TokenService) GenerateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken creates a long-lived refresh token for the user.
func (s *TokenService) GenerateRefreshToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &RefreshClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.RefreshExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.RefreshSecret))
	if err != nil {
		return "", fmt.Errorf("failed to create refresh token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *TokenService) ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(tokenString, s.config.AccessSecret, claims); err != nil {
		return nil, err
	}
	if claims.UserID <= 0 || claims.Username == "" {
		return nil, apperrors.ErrTokenMalformed
	}
	return claims, nil
}

// ValidateRefreshToken validates a refresh token and returns its claims. A
// token signed with the access secret fails here because the secrets are
// independent.
func (s *TokenService) ValidateRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, s.config.RefreshSecret, claims); err != nil {
		return nil, err
	}
	if claims.UserID <= 0 {
		return nil, apperrors.ErrTokenMalformed
	}
	return claims, nil
}

// parse validates signature, algorithm and expiry, mapping library errors to
// the application error taxonomy.
func (s *TokenService) parse(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return apperrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return apperrors.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return apperrors.ErrTokenSignature
		default:
			return apperrors.ErrTokenSignature
		}
	}

	if !token.Valid {
		return apperrors.ErrTokenSignature
	}
	return nil
}

// GetAccessTokenExpiry returns the configured access token lifetime in seconds.
func (s *TokenService) GetAccessTokenExpiry() int64 {
	return int64(s.config.AccessExp.Seconds())
}

// GetRefreshTokenExpiry returns the configured refresh token lifetime in seconds.
func (s *TokenService) GetRefreshTokenExpiry() int64 {
	return int64(s.config.RefreshExp.Seconds())
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrTokenMalformed
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
