package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/repositories"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

// RecordService handles satellite record creation and updates. Creation is a
// two-step flow: insert the record, then append its id to the owning user's
// reference list. The steps share no transaction; a crash in between leaves
// an orphaned but valid record, and the reference list stays authoritative.
type RecordService struct {
	userRepo       repositories.IUserRepository
	internshipRepo repositories.IInternshipRepository
	higherEdRepo   repositories.IHigherEducationRepository
	projectRepo    repositories.IProjectRepository
	awardRepo      repositories.IAwardRepository
	examRepo       repositories.IExamRepository
	logger         zerolog.Logger
}

// NewRecordService creates a new RecordService
func NewRecordService(
	userRepo repositories.IUserRepository,
	internshipRepo repositories.IInternshipRepository,
	higherEdRepo repositories.IHigherEducationRepository,
	projectRepo repositories.IProjectRepository,
	awardRepo repositories.IAwardRepository,
	examRepo repositories.IExamRepository,
	logger zerolog.Logger,
) *RecordService {
	return &RecordService{
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
		higherEdRepo:   higherEdRepo,
		projectRepo:    projectRepo,
		awardRepo:      awardRepo,
		examRepo:       examRepo,
		logger:         logger,
	}
}

// parseDate parses a wire-format date already checked by DTO validation.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid date format")
	}
	return t, nil
}

func requireDoc(docRef models.DocRef) error {
	if docRef == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "supporting doc is required")
	}
	return nil
}

// CreateInternship creates an internship record and appends it to the user's
// internship list.
func (s *RecordService) CreateInternship(ctx context.Context, studentID int64, req *dto.InternshipRequest, docRef models.DocRef) (*models.Internship, error) {
	if err := requireDoc(docRef); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	internship := &models.Internship{
		StudentID: studentID,
		Company:   req.Company,
		Role:      req.Role,
		StartDate: startDate,
		EndDate:   endDate,
		DocRef:    docRef,
	}

	if _, err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendSatellite(ctx, studentID, models.KindInternship, internship.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("internshipID", internship.ID).Msg("Internship record created")
	return internship, nil
}

// UpdateInternship applies a partial update to an internship record.
func (s *RecordService) UpdateInternship(ctx context.Context, id int64, req *dto.InternshipUpdateRequest) (*models.Internship, error) {
	patch := &models.InternshipPatch{
		Company: req.Company,
		Role:    req.Role,
	}

	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = &endDate
	}

	return s.internshipRepo.Update(ctx, id, patch)
}

// CreateHigherEducation creates a higher education record and appends it to
// the user's list.
func (s *RecordService) CreateHigherEducation(ctx context.Context, studentID int64, req *dto.HigherEducationRequest, docRef models.DocRef) (*models.HigherEducation, error) {
	if err := requireDoc(docRef); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	higherEd := &models.HigherEducation{
		StudentID:    studentID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		DocRef:       docRef,
	}

	if _, err := s.higherEdRepo.Create(ctx, higherEd); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendSatellite(ctx, studentID, models.KindHigherEducation, higherEd.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("higherEdID", higherEd.ID).Msg("Higher education record created")
	return higherEd, nil
}

// UpdateHigherEducation applies a partial update to a higher education record.
func (s *RecordService) UpdateHigherEducation(ctx context.Context, id int64, req *dto.HigherEducationUpdateRequest) (*models.HigherEducation, error) {
	patch := &models.HigherEducationPatch{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
	}

	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = &endDate
	}

	return s.higherEdRepo.Update(ctx, id, patch)
}

// CreateProject creates a project record and appends it to the user's list.
func (s *RecordService) CreateProject(ctx context.Context, studentID int64, req *dto.ProjectRequest, docRef models.DocRef) (*models.Project, error) {
	if err := requireDoc(docRef); err != nil {
		return nil, err
	}

	project := &models.Project{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		DocRef:      docRef,
	}

	if _, err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendSatellite(ctx, studentID, models.KindProject, project.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("projectID", project.ID).Msg("Project record created")
	return project, nil
}

// UpdateProject applies a partial update to a project record.
func (s *RecordService) UpdateProject(ctx context.Context, id int64, req *dto.ProjectUpdateRequest) (*models.Project, error) {
	return s.projectRepo.Update(ctx, id, &models.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
	})
}

// CreateAward creates an award record and appends it to the user's list.
func (s *RecordService) CreateAward(ctx context.Context, studentID int64, req *dto.AwardRequest, docRef models.DocRef) (*models.Award, error) {
	if err := requireDoc(docRef); err != nil {
		return nil, err
	}

	award := &models.Award{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		DocRef:      docRef,
	}

	if _, err := s.awardRepo.Create(ctx, award); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendSatellite(ctx, studentID, models.KindAward, award.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("awardID", award.ID).Msg("Award record created")
	return award, nil
}

// UpdateAward applies a partial update to an award record.
func (s *RecordService) UpdateAward(ctx context.Context, id int64, req *dto.AwardUpdateRequest) (*models.Award, error) {
	return s.awardRepo.Update(ctx, id, &models.AwardPatch{
		Title:       req.Title,
		Description: req.Description,
	})
}

// CreateExam creates an exam record and appends it to the user's list.
func (s *RecordService) CreateExam(ctx context.Context, studentID int64, req *dto.ExamRequest, docRef models.DocRef) (*models.Exam, error) {
	if err := requireDoc(docRef); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		StudentID: studentID,
		Name:      req.Name,
		Score:     req.Score,
		DocRef:    docRef,
	}

	if _, err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendSatellite(ctx, studentID, models.KindExam, exam.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("examID", exam.ID).Msg("Exam record created")
	return exam, nil
}

// UpdateExam applies a partial update to an exam record.
func (s *RecordService) UpdateExam(ctx context.Context, id int64, req *dto.ExamUpdateRequest) (*models.Exam, error) {
	return s.examRepo.Update(ctx, id, &models.ExamPatch{
		Name:  req.Name,
		Score: req.Score,
	})
}
