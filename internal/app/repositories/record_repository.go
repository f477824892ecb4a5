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

// IInternshipRepository defines internship database operations
type IInternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) (int64, error)
	Update(ctx context.Context, id int64, patch *models.InternshipPatch) (*models.Internship, error)
}

// IHigherEducationRepository defines higher education database operations
type IHigherEducationRepository interface {
	Create(ctx context.Context, higherEd *models.HigherEducation) (int64, error)
	Update(ctx context.Context, id int64, patch *models.HigherEducationPatch) (*models.HigherEducation, error)
}

// IProjectRepository defines project database operations
type IProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (int64, error)
	Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error)
}

// IAwardRepository defines award database operations
type IAwardRepository interface {
	Create(ctx context.Context, award *models.Award) (int64, error)
	Update(ctx context.Context, id int64, patch *models.AwardPatch) (*models.Award, error)
}

// IExamRepository defines exam database operations
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) (int64, error)
	Update(ctx context.Context, id int64, patch *models.ExamPatch) (*models.Exam, error)
}

// InternshipRepository handles internship database operations
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Create inserts a new internship record
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	sql, args, err := r.sb.Insert("internships").
		Columns("student_id", "company", "role", "start_date", "end_date", "doc_ref").
		Values(internship.StudentID, internship.Company, internship.Role,
			internship.StartDate, internship.EndDate, internship.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create internship SQL")
		return 0, fmt.Errorf("failed to build create internship query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating internship: %w", err)
	}

	internship.ID = id
	return id, nil
}

// Update applies a partial update and returns the updated record.
func (r *InternshipRepository) Update(ctx context.Context, id int64, patch *models.InternshipPatch) (*models.Internship, error) {
	update := r.sb.Update("internships").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Company != nil {
		update = update.Set("company", *patch.Company)
	}
	if patch.Role != nil {
		update = update.Set("role", *patch.Role)
	}
	if patch.StartDate != nil {
		update = update.Set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		update = update.Set("end_date", *patch.EndDate)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, company, role, start_date, end_date, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update internship SQL")
		return nil, fmt.Errorf("failed to build update internship query: %w", err)
	}

	internship := &models.Internship{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&internship.ID, &internship.StudentID, &internship.Company, &internship.Role,
		&internship.StartDate, &internship.EndDate, &internship.DocRef,
		&internship.CreatedAt, &internship.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating internship: %w", err)
	}
	return internship, nil
}

// HigherEducationRepository handles higher education database operations
type HigherEducationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHigherEducationRepository creates a new HigherEducationRepository
func NewHigherEducationRepository(db *pgxpool.Pool) *HigherEducationRepository {
	return &HigherEducationRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Create inserts a new higher education record
func (r *HigherEducationRepository) Create(ctx context.Context, higherEd *models.HigherEducation) (int64, error) {
	sql, args, err := r.sb.Insert("higher_educations").
		Columns("student_id", "institution", "degree", "field_of_study", "start_date", "end_date", "doc_ref").
		Values(higherEd.StudentID, higherEd.Institution, higherEd.Degree,
			higherEd.FieldOfStudy, higherEd.StartDate, higherEd.EndDate, higherEd.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create higher education SQL")
		return 0, fmt.Errorf("failed to build create higher education query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating higher education: %w", err)
	}

	higherEd.ID = id
	return id, nil
}

// Update applies a partial update and returns the updated record.
func (r *HigherEducationRepository) Update(ctx context.Context, id int64, patch *models.HigherEducationPatch) (*models.HigherEducation, error) {
	update := r.sb.Update("higher_educations").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Institution != nil {
		update = update.Set("institution", *patch.Institution)
	}
	if patch.Degree != nil {
		update = update.Set("degree", *patch.Degree)
	}
	if patch.FieldOfStudy != nil {
		update = update.Set("field_of_study", *patch.FieldOfStudy)
	}
	if patch.StartDate != nil {
		update = update.Set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		update = update.Set("end_date", *patch.EndDate)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, institution, degree, field_of_study, start_date, end_date, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update higher education SQL")
		return nil, fmt.Errorf("failed to build update higher education query: %w", err)
	}

	higherEd := &models.HigherEducation{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&higherEd.ID, &higherEd.StudentID, &higherEd.Institution, &higherEd.Degree,
		&higherEd.FieldOfStudy, &higherEd.StartDate, &higherEd.EndDate, &higherEd.DocRef,
		&higherEd.CreatedAt, &higherEd.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating higher education: %w", err)
	}
	return higherEd, nil
}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Create inserts a new project record
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	sql, args, err := r.sb.Insert("projects").
		Columns("student_id", "title", "description", "doc_ref").
		Values(project.StudentID, project.Title, project.Description, project.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	project.ID = id
	return id, nil
}

// Update applies a partial update and returns the updated record.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error) {
	update := r.sb.Update("projects").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, title, description, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update project SQL")
		return nil, fmt.Errorf("failed to build update project query: %w", err)
	}

	project := &models.Project{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&project.ID, &project.StudentID, &project.Title, &project.Description,
		&project.DocRef, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return project, nil
}

// AwardRepository handles award database operations
type AwardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAwardRepository creates a new AwardRepository
func NewAwardRepository(db *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Create inserts a new award record
func (r *AwardRepository) Create(ctx context.Context, award *models.Award) (int64, error) {
	sql, args, err := r.sb.Insert("awards").
		Columns("student_id", "title", "description", "doc_ref").
		Values(award.StudentID, award.Title, award.Description, award.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create award SQL")
		return 0, fmt.Errorf("failed to build create award query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating award: %w", err)
	}

	award.ID = id
	return id, nil
}

// Update applies a partial update and returns the updated record.
func (r *AwardRepository) Update(ctx context.Context, id int64, patch *models.AwardPatch) (*models.Award, error) {
	update := r.sb.Update("awards").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, title, description, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update award SQL")
		return nil, fmt.Errorf("failed to build update award query: %w", err)
	}

	award := &models.Award{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&award.ID, &award.StudentID, &award.Title, &award.Description,
		&award.DocRef, &award.CreatedAt, &award.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating award: %w", err)
	}
	return award, nil
}

// ExamRepository handles exam database operations
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Create inserts a new exam record
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (int64, error) {
	sql, args, err := r.sb.Insert("exams").
		Columns("student_id", "name", "score", "doc_ref").
		Values(exam.StudentID, exam.Name, exam.Score, exam.DocRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create exam SQL")
		return 0, fmt.Errorf("failed to build create exam query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating exam: %w", err)
	}

	exam.ID = id
	return id, nil
}

// Update applies a partial update and returns the updated record.
func (r *ExamRepository) Update(ctx context.Context, id int64, patch *models.ExamPatch) (*models.Exam, error) {
	update := r.sb.Update("exams").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Score != nil {
		update = update.Set("score", *patch.Score)
	}
	if patch.DocRef != nil {
		update = update.Set("doc_ref", *patch.DocRef)
	}

	sql, args, err := update.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, name, score, doc_ref, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update exam SQL")
		return nil, fmt.Errorf("failed to build update exam query: %w", err)
	}

	exam := &models.Exam{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&exam.ID, &exam.StudentID, &exam.Name, &exam.Score,
		&exam.DocRef, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error updating exam: %w", err)
	}
	return exam, nil
}
