package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/dberrors"
	"github.com/studentvault/backend/internal/pkg/logger"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, patch *models.UserPatch) error
	SetRefreshToken(ctx context.Context, userID int64, token string) error
	ClearRefreshToken(ctx context.Context, userID int64) error
	AttachPlacement(ctx context.Context, userID int64, slot int, placementID int64) error
	AppendSatellite(ctx context.Context, userID int64, kind models.SatelliteKind, recordID int64) error
}

// NormalizeUsername lowercases and trims a username the way it is stored.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail lowercases an email the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// placementColumns maps a placement slot to its column. Slots are fixed at
// three per the profile schema.
var placementColumns = map[int]string{
	1: "placement_one",
	2: "placement_two",
	3: "placement_three",
}

// satelliteColumns maps a satellite kind to the owning reference-list column.
var satelliteColumns = map[models.SatelliteKind]string{
	models.KindProject:         "projects",
	models.KindAward:           "awards",
	models.KindHigherEducation: "higher_educations",
	models.KindInternship:      "internships",
	models.KindExam:            "exams",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = `id, username, password, full_name, roll_number, email, id_card_ref,
	branch, section, image_ref, mobile_number, semester, is_verified, cgpa,
	placement_one, placement_two, placement_three,
	projects, awards, higher_educations, internships, exams,
	refresh_token, created_at, updated_at`

// scanUser scans a full user row in userColumns order.
func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName, &user.RollNumber,
		&user.Email, &user.IDCardRef, &user.Branch, &user.Section, &user.ImageRef,
		&user.MobileNumber, &user.Semester, &user.IsVerified, &user.CGPA,
		&user.PlacementOne, &user.PlacementTwo, &user.PlacementThree,
		&user.Projects, &user.Awards, &user.HigherEds, &user.Internships, &user.Exams,
		&user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Username and email are normalized before the
// uniqueness checks and the insert, so uniqueness is effectively
// case-insensitive.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	user.Username = NormalizeUsername(user.Username)
	user.Email = NormalizeEmail(user.Email)

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password, full_name, roll_number, email, id_card_ref,
			branch, section, image_ref, mobile_number, semester, is_verified, cgpa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		user.Username, user.Password, user.FullName, user.RollNumber, user.Email,
		user.IDCardRef, user.Branch, user.Section, user.ImageRef, user.MobileNumber,
		user.Semester, user.IsVerified, user.CGPA).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailTaken
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username. The lookup value is normalized
// the same way stored usernames are.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, NormalizeUsername(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update of mutable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, patch *models.UserPatch) error {
	update := r.sb.Update("users").Set("updated_at", squirrel.Expr("NOW()"))

	if patch.RollNumber != nil {
		update = update.Set("roll_number", *patch.RollNumber)
	}
	if patch.Email != nil {
		update = update.Set("email", NormalizeEmail(*patch.Email))
	}
	if patch.Branch != nil {
		update = update.Set("branch", *patch.Branch)
	}
	if patch.Section != nil {
		update = update.Set("section", *patch.Section)
	}
	if patch.ImageRef != nil {
		update = update.Set("image_ref", *patch.ImageRef)
	}
	if patch.MobileNumber != nil {
		update = update.Set("mobile_number", *patch.MobileNumber)
	}
	if patch.Semester != nil {
		update = update.Set("semester", *patch.Semester)
	}
	if patch.CGPA != nil {
		update = update.Set("cgpa", *patch.CGPA)
	}
	if patch.Password != nil {
		update = update.Set("password", *patch.Password)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": userID}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetRefreshToken stores the single active refresh token for the user,
// overwriting any prior value. Concurrent logins race and the last successful
// write wins.
func (r *UserRepository) SetRefreshToken(ctx context.Context, userID int64, token string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $1, updated_at = NOW() WHERE id = $2`,
		token, userID)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ClearRefreshToken empties the refresh token slot. Clearing an already empty
// slot is a no-op, which makes logout idempotent.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = '', updated_at = NOW() WHERE id = $1`,
		userID)
	if err != nil {
		return fmt.Errorf("error clearing refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AttachPlacement sets one of the three placement slots.
func (r *UserRepository) AttachPlacement(ctx context.Context, userID int64, slot int, placementID int64) error {
	column, ok := placementColumns[slot]
	if !ok {
		return apperrors.ErrBadRequest
	}

	cmdTag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = NOW() WHERE id = $2`, column),
		placementID, userID)
	if err != nil {
		return fmt.Errorf("error attaching placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AppendSatellite appends a record id to the owning reference list for the
// given kind, preserving insertion order.
func (r *UserRepository) AppendSatellite(ctx context.Context, userID int64, kind models.SatelliteKind, recordID int64) error {
	column, ok := satelliteColumns[kind]
	if !ok {
		return apperrors.ErrBadRequest
	}

	cmdTag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE users SET %s = array_append(%s, $1), updated_at = NOW() WHERE id = $2`, column, column),
		recordID, userID)
	if err != nil {
		return fmt.Errorf("error appending %s record: %w", strings.ToLower(string(kind)), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
