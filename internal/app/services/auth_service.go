package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/repositories"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/auth"
)

var mobileNumberRegex = regexp.MustCompile(`^\d{10}$`)

// AuthService handles registration and the login/refresh/logout session flow.
// A user has at most one live refresh token: every login overwrites the slot
// and logout clears it.
type AuthService struct {
	userRepo repositories.IUserRepository
	tokens   *auth.TokenService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user with a hashed password. The id card document
// must already be stored; registration without one is rejected.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, idCardRef models.DocRef) (*models.User, error) {
	if idCardRef == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "id card is required for verification")
	}

	mobileNumber := req.MobileNumber
	if mobileNumber == "" {
		mobileNumber = models.DefaultMobileNumber
	}
	if !mobileNumberRegex.MatchString(mobileNumber) {
		return nil, apperrors.ErrInvalidMobileNumber
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Password:     hashedPassword,
		FullName:     req.FullName,
		RollNumber:   req.RollNumber,
		Email:        req.Email,
		IDCardRef:    idCardRef,
		Branch:       req.Branch,
		Section:      req.Section,
		MobileNumber: mobileNumber,
		Semester:     req.Semester,
		Projects:     []int64{},
		Awards:       []int64{},
		HigherEds:    []int64{},
		Internships:  []int64{},
		Exams:        []int64{},
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// Login authenticates a user and issues a token pair. The persisted refresh
// token is overwritten, so any prior session's refresh token stops working.
// User-not-found and wrong-password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("error persisting refresh token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             s.tokens.GetAccessTokenExpiry(),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: s.tokens.GetRefreshTokenExpiry(),
	}, nil
}

// Logout clears the user's refresh token slot. Calling it when no session is
// active is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("User logged out")
	return nil
}

// Refresh mints a new access token from a valid refresh token. The presented
// token must exactly match the persisted one; a token invalidated by logout or
// by a newer login fails with ErrSessionNotFound. The refresh token itself is
// not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperrors.ErrSessionNotFound
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokens.GetAccessTokenExpiry(),
	}, nil
}
