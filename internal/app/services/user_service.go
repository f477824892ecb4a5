package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/repositories"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/auth"
)

// UserService handles profile updates and placement slot management.
type UserService struct {
	userRepo      repositories.IUserRepository
	placementRepo repositories.IPlacementRepository
	logger        zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, placementRepo repositories.IPlacementRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:      userRepo,
		placementRepo: placementRepo,
		logger:        logger,
	}
}

// UpdateProfile applies a partial update of mutable profile fields and returns
// the updated user. The password is re-hashed only when the patch carries one.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	patch := &models.UserPatch{
		RollNumber: req.RollNumber,
		Email:      req.Email,
		Branch:     req.Branch,
		Section:    req.Section,
		Semester:   req.Semester,
		CGPA:       req.CGPA,
	}

	if req.MobileNumber != nil {
		if !mobileNumberRegex.MatchString(*req.MobileNumber) {
			return nil, apperrors.ErrInvalidMobileNumber
		}
		patch.MobileNumber = req.MobileNumber
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hashed
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, patch); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfileImage stores a new profile image reference.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID int64, imageRef models.DocRef) (*models.User, error) {
	patch := &models.UserPatch{ImageRef: &imageRef}
	if err := s.userRepo.UpdateProfile(ctx, userID, patch); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// GetProfile loads a user by id.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// AttachPlacement creates a placement record and binds it to one of the three
// placement slots. Record creation and slot attachment are two writes with no
// shared transaction; the slot update is the authoritative step.
func (s *UserService) AttachPlacement(ctx context.Context, userID int64, slot int, req *dto.PlacementRequest, docRef models.DocRef) (*models.Placement, error) {
	if slot < 1 || slot > 3 {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "placement slot must be 1, 2 or 3")
	}
	if docRef == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "supporting doc is required")
	}

	placement := &models.Placement{
		StudentID: userID,
		Company:   req.Company,
		Role:      req.Role,
		DocRef:    docRef,
	}

	if _, err := s.placementRepo.Create(ctx, placement); err != nil {
		return nil, err
	}

	if err := s.userRepo.AttachPlacement(ctx, userID, slot, placement.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Int("slot", slot).Int64("placementID", placement.ID).Msg("Placement attached")
	return placement, nil
}

// UpdatePlacement applies a partial update to an existing placement record.
func (s *UserService) UpdatePlacement(ctx context.Context, placementID int64, patch *models.PlacementPatch) (*models.Placement, error) {
	return s.placementRepo.Update(ctx, placementID, patch)
}
