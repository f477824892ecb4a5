package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/auth"
)

type fakePlacementRepo struct {
	records map[int64]*models.Placement
	nextID  int64
}

func newFakePlacementRepo() *fakePlacementRepo {
	return &fakePlacementRepo{records: map[int64]*models.Placement{}, nextID: 1}
}

func (f *fakePlacementRepo) Create(_ context.Context, placement *models.Placement) (int64, error) {
	placement.ID = f.nextID
	f.nextID++
	f.records[placement.ID] = placement
	return placement.ID, nil
}

func (f *fakePlacementRepo) GetByID(_ context.Context, id int64) (*models.Placement, error) {
	placement, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	copied := *placement
	return &copied, nil
}

func (f *fakePlacementRepo) Update(_ context.Context, id int64, patch *models.PlacementPatch) (*models.Placement, error) {
	placement, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	if patch.Company != nil {
		placement.Company = *patch.Company
	}
	if patch.Role != nil {
		placement.Role = *patch.Role
	}
	copied := *placement
	return &copied, nil
}

func newTestUserService(t *testing.T) (*UserService, *fakeUserRepo, *fakePlacementRepo, int64) {
	t.Helper()
	userRepo := newFakeUserRepo()
	placementRepo := newFakePlacementRepo()
	svc := NewUserService(userRepo, placementRepo, zerolog.Nop())

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	userID, err := userRepo.Create(context.Background(), &models.User{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		Password:     hash,
		MobileNumber: models.DefaultMobileNumber,
	})
	require.NoError(t, err)
	return svc, userRepo, placementRepo, userID
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("applies partial update", func(t *testing.T) {
		t.Parallel()
		svc, _, _, userID := newTestUserService(t)

		cgpa := "9.1"
		mobile := "9876543210"
		user, err := svc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
			CGPA:         &cgpa,
			MobileNumber: &mobile,
		})
		require.NoError(t, err)

		assert.Equal(t, "9.1", user.CGPA)
		assert.Equal(t, "9876543210", user.MobileNumber)
		assert.Equal(t, "jdoe@example.com", user.Email)
	})

	t.Run("rejects bad mobile number", func(t *testing.T) {
		t.Parallel()
		svc, _, _, userID := newTestUserService(t)

		mobile := "not-a-number"
		_, err := svc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{MobileNumber: &mobile})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidMobileNumber))
	})

	t.Run("rehashes password when present", func(t *testing.T) {
		t.Parallel()
		svc, userRepo, _, userID := newTestUserService(t)

		password := "newsecret"
		_, err := svc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Password: &password})
		require.NoError(t, err)

		stored := userRepo.users[userID].Password
		assert.NotEqual(t, "newsecret", stored)
		assert.True(t, auth.CheckPassword(stored, "newsecret"))
	})

	t.Run("short password is rejected before storage", func(t *testing.T) {
		t.Parallel()
		svc, userRepo, _, userID := newTestUserService(t)

		before := userRepo.users[userID].Password
		password := "pw"
		_, err := svc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Password: &password})
		assert.True(t, errors.Is(err, apperrors.ErrPasswordTooShort))
		assert.Equal(t, before, userRepo.users[userID].Password)
	})
}

func TestAttachPlacement(t *testing.T) {
	t.Parallel()

	req := &dto.PlacementRequest{Company: "Acme", Role: "SWE"}

	t.Run("creates record and fills the slot", func(t *testing.T) {
		t.Parallel()
		svc, userRepo, placementRepo, userID := newTestUserService(t)

		placement, err := svc.AttachPlacement(context.Background(), userID, 2, req, "placements/offer.pdf")
		require.NoError(t, err)

		assert.Len(t, placementRepo.records, 1)
		require.NotNil(t, userRepo.users[userID].PlacementTwo)
		assert.Equal(t, placement.ID, *userRepo.users[userID].PlacementTwo)
		assert.Nil(t, userRepo.users[userID].PlacementOne)
	})

	t.Run("rejects slot outside 1..3", func(t *testing.T) {
		t.Parallel()
		svc, _, _, userID := newTestUserService(t)

		for _, slot := range []int{0, 4, -1} {
			_, err := svc.AttachPlacement(context.Background(), userID, slot, req, "placements/offer.pdf")
			assert.True(t, errors.Is(err, apperrors.ErrBadRequest), "slot %d", slot)
		}
	})

	t.Run("requires supporting doc", func(t *testing.T) {
		t.Parallel()
		svc, _, _, userID := newTestUserService(t)

		_, err := svc.AttachPlacement(context.Background(), userID, 1, req, "")
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("re-attaching a slot overwrites it", func(t *testing.T) {
		t.Parallel()
		svc, userRepo, _, userID := newTestUserService(t)

		first, err := svc.AttachPlacement(context.Background(), userID, 1, req, "placements/a.pdf")
		require.NoError(t, err)
		second, err := svc.AttachPlacement(context.Background(), userID, 1, req, "placements/b.pdf")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, second.ID, *userRepo.users[userID].PlacementOne)
	})
}

func TestUpdatePlacement(t *testing.T) {
	t.Parallel()

	svc, _, _, userID := newTestUserService(t)
	placement, err := svc.AttachPlacement(context.Background(), userID, 1,
		&dto.PlacementRequest{Company: "Acme", Role: "SWE"}, "placements/offer.pdf")
	require.NoError(t, err)

	role := "Senior SWE"
	updated, err := svc.UpdatePlacement(context.Background(), placement.ID, &models.PlacementPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Senior SWE", updated.Role)
	assert.Equal(t, "Acme", updated.Company)

	_, err = svc.UpdatePlacement(context.Background(), 99, &models.PlacementPatch{Role: &role})
	assert.True(t, errors.Is(err, apperrors.ErrPlacementNotFound))
}
