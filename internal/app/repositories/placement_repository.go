package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/pkg/apperrors"
	"github.com/studentvault/backend/internal/pkg/logger"
)

// IPlacementRepository defines placement database operations
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	Update(ctx context.Context, id int64, patch *models.PlacementPatch) (*models.Placement, error)
}

// PlacementRepository handles placement database operations
type PlacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new placement record
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) (int64, error) {
	sql, args, err := r.sb.Insert("placements").
		Columns("student_id", "company", "role", "doc_ref").
		Values(placement.StudentID, placement.Company, placement.Role, placement.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create placement SQL")
		return 0, fmt.Errorf("failed to build create placement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating placement: %w", err)
	}

	placement.ID = id
	return id, nil
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	placement := &models.Placement{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, company, role, doc_ref, created_at, updated_at
		FROM placements WHERE id = $1`, id).Scan(
		&placement.ID, &placement.StudentID, &placement.Company, &placement.Role,
		&placement.DocRef, &placement.CreatedAt, &placement.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}
	return placement, nil
}

// Update applies a partial update and returns the updated record.
func (r *PlacementRepository) Update(ctx context.Context, id int64, patch *models.PlacementPatch) (*models.Placement, error) {
	update := r.sb.Update("placements").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Company != nil {
		update = update.Set("company", *patch.Company)
	}
	if patch.Role != nil {
		update = update.Set("role", *patch.Role)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, company, role, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update placement SQL")
		return nil, fmt.Errorf("failed to build update placement query: %w", err)
	}

	placement := &models.Placement{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&placement.ID, &placement.StudentID, &placement.Company, &placement.Role,
		&placement.DocRef, &placement.CreatedAt, &placement.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error updating placement: %w", err)
	}
	return placement, nil
}
