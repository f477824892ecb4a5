package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/repositories"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/auth"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	user.Username = repositories.NormalizeUsername(user.Username)
	user.Email = repositories.NormalizeEmail(user.Email)
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailTaken
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	username = repositories.NormalizeUsername(username)
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, userID int64, patch *models.UserPatch) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if patch.Email != nil {
		user.Email = repositories.NormalizeEmail(*patch.Email)
	}
	if patch.MobileNumber != nil {
		user.MobileNumber = *patch.MobileNumber
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.CGPA != nil {
		user.CGPA = *patch.CGPA
	}
	return nil
}

func (f *fakeUserRepo) SetRefreshToken(_ context.Context, userID int64, token string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.RefreshToken = token
	return nil
}

func (f *fakeUserRepo) ClearRefreshToken(_ context.Context, userID int64) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.RefreshToken = ""
	return nil
}

func (f *fakeUserRepo) AttachPlacement(_ context.Context, userID int64, slot int, placementID int64) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	switch slot {
	case 1:
		user.PlacementOne = &placementID
	case 2:
		user.PlacementTwo = &placementID
	case 3:
		user.PlacementThree = &placementID
	default:
		return apperrors.ErrBadRequest
	}
	return nil
}

func (f *fakeUserRepo) AppendSatellite(_ context.Context, userID int64, kind models.SatelliteKind, recordID int64) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	switch kind {
	case models.KindProject:
		user.Projects = append(user.Projects, recordID)
	case models.KindAward:
		user.Awards = append(user.Awards, recordID)
	case models.KindHigherEducation:
		user.HigherEds = append(user.HigherEds, recordID)
	case models.KindInternship:
		user.Internships = append(user.Internships, recordID)
	case models.KindExam:
		user.Exams = append(user.Exams, recordID)
	default:
		return apperrors.ErrBadRequest
	}
	return nil
}

func newTestAuthService(repo repositories.IUserRepository) *AuthService {
	tokens := auth.NewTokenService(auth.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExp:     time.Hour,
		RefreshExp:    240 * time.Hour,
		Issuer:        "studentvault.test",
	})
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:   "JDoe",
		Password:   "secret123",
		FullName:   "Jane Doe",
		RollNumber: "21CS042",
		Email:      "JDoe@Example.com",
		Branch:     "CSE",
		Section:    "A",
		Semester:   "6",
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user with hashed password and defaults", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		user, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
		require.NoError(t, err)

		assert.Equal(t, "jdoe", user.Username)
		assert.Equal(t, "jdoe@example.com", user.Email)
		assert.NotEqual(t, "secret123", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "secret123"))
		assert.Equal(t, models.DefaultMobileNumber, user.MobileNumber)
		assert.Empty(t, user.RefreshToken)
		assert.NotNil(t, user.Projects)
	})

	t.Run("rejects missing id card", func(t *testing.T) {
		t.Parallel()
		svc := newTestAuthService(newFakeUserRepo())

		_, err := svc.Register(context.Background(), registerRequest(), "")
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		svc := newTestAuthService(newFakeUserRepo())

		req := registerRequest()
		req.Password = "pw"
		_, err := svc.Register(context.Background(), req, "idcards/card.png")
		assert.True(t, errors.Is(err, apperrors.ErrPasswordTooShort))
	})

	t.Run("rejects bad mobile number", func(t *testing.T) {
		t.Parallel()
		svc := newTestAuthService(newFakeUserRepo())

		req := registerRequest()
		req.MobileNumber = "12345"
		_, err := svc.Register(context.Background(), req, "idcards/card.png")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidMobileNumber))
	})

	t.Run("duplicate username differs only in case", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		_, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
		require.NoError(t, err)

		req := registerRequest()
		req.Username = "JDOE"
		req.Email = "other@example.com"
		_, err = svc.Register(context.Background(), req, "idcards/card.png")
		assert.True(t, errors.Is(err, apperrors.ErrUsernameTaken))
	})

	t.Run("duplicate email differs only in case", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		_, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
		require.NoError(t, err)

		req := registerRequest()
		req.Username = "someoneelse"
		req.Email = "JDOE@EXAMPLE.COM"
		_, err = svc.Register(context.Background(), req, "idcards/card.png")
		assert.True(t, errors.Is(err, apperrors.ErrEmailTaken))
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*AuthService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("issues token pair and persists refresh token", func(t *testing.T) {
		t.Parallel()
		svc, repo := setup(t)

		tokens, err := svc.Login(context.Background(), "jdoe", "secret123")
		require.NoError(t, err)

		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.Equal(t, tokens.RefreshToken, repo.users[1].RefreshToken)
	})

	t.Run("username lookup ignores case", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), "JDoe", "secret123")
		assert.NoError(t, err)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		_, errUnknown := svc.Login(context.Background(), "nobody", "secret123")
		_, errWrongPw := svc.Login(context.Background(), "jdoe", "wrong-password")

		assert.True(t, errors.Is(errUnknown, apperrors.ErrInvalidCredentials))
		assert.True(t, errors.Is(errWrongPw, apperrors.ErrInvalidCredentials))
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("second login overwrites the refresh token slot", func(t *testing.T) {
		t.Parallel()
		svc, repo := setup(t)

		first, err := svc.Login(context.Background(), "jdoe", "secret123")
		require.NoError(t, err)
		second, err := svc.Login(context.Background(), "jdoe", "secret123")
		require.NoError(t, err)

		assert.Equal(t, second.RefreshToken, repo.users[1].RefreshToken)

		// The first session's refresh token no longer matches the slot.
		_, err = svc.Refresh(context.Background(), first.RefreshToken)
		assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))

		_, err = svc.Refresh(context.Background(), second.RefreshToken)
		assert.NoError(t, err)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*AuthService, *dto.TokenResponse) {
		svc := newTestAuthService(newFakeUserRepo())
		_, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
		require.NoError(t, err)
		tokens, err := svc.Login(context.Background(), "jdoe", "secret123")
		require.NoError(t, err)
		return svc, tokens
	}

	t.Run("valid refresh token mints a new access token", func(t *testing.T) {
		t.Parallel()
		svc, tokens := setup(t)

		refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		// The refresh token itself is not rotated.
		assert.Empty(t, refreshed.RefreshToken)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		t.Parallel()
		svc, tokens := setup(t)

		_, err := svc.Refresh(context.Background(), tokens.AccessToken)
		assert.True(t, apperrors.IsAuthError(err))
	})

	t.Run("refresh after logout fails", func(t *testing.T) {
		t.Parallel()
		svc, tokens := setup(t)

		require.NoError(t, svc.Logout(context.Background(), 1))
		_, err := svc.Refresh(context.Background(), tokens.RefreshToken)
		assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
	})

	t.Run("garbage token fails validation", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.True(t, apperrors.IsAuthError(err))
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	_, err := svc.Register(context.Background(), registerRequest(), "idcards/card.png")
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "jdoe", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), 1))
	// Logging out with no active session is a no-op, not an error.
	assert.NoError(t, svc.Logout(context.Background(), 1))

	assert.True(t, errors.Is(svc.Logout(context.Background(), 99), apperrors.ErrUserNotFound))
}
