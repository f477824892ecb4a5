package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/services"
	"github.com/studentvault/backend/internal/middleware"
	"github.com/studentvault/backend/internal/pkg/docstore"
)

// RecordController handles satellite record endpoints. Every create request
// is multipart: record fields plus the supporting doc under "doc".
type RecordController struct {
	recordService *services.RecordService
	docs          docstore.DocumentStore
	logger        zerolog.Logger
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService *services.RecordService, docs docstore.DocumentStore, logger zerolog.Logger) *RecordController {
	return &RecordController{
		recordService: recordService,
		docs:          docs,
		logger:        logger,
	}
}

// saveDoc stores the multipart "doc" file and returns its reference.
func saveDoc(ctx *gin.Context, docs docstore.DocumentStore, subPath string) (models.DocRef, error) {
	fileHeader, err := ctx.FormFile("doc")
	if err != nil {
		return "", err
	}
	return docs.Save(fileHeader, subPath)
}

// recordID parses the :id path parameter.
func recordID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Record id must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func (c *RecordController) authedUser(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

func (c *RecordController) bindCreate(ctx *gin.Context, req interface{ Validate() error }, subPath string) (models.DocRef, bool) {
	if err := ctx.ShouldBind(req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	if err := req.Validate(); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	docRef, err := saveDoc(ctx, c.docs, subPath)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Supporting doc is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return docRef, true
}

// CreateInternship creates an internship record for the caller.
func (c *RecordController) CreateInternship(ctx *gin.Context) {
	userID, ok := c.authedUser(ctx)
	if !ok {
		return
	}

	var req dto.InternshipRequest
	docRef, ok := c.bindCreate(ctx, &req, "internships")
	if !ok {
		return
	}

	internship, err := c.recordService.CreateInternship(ctx.Request.Context(), userID, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Internship create failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: internship})
}

// UpdateInternship applies a partial update to an internship record.
func (c *RecordController) UpdateInternship(ctx *gin.Context) {
	if _, ok := c.authedUser(ctx); !ok {
		return
	}
	id, ok := recordID(ctx)
	if !ok {
		return
	}

	var req dto.InternshipUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.recordService.UpdateInternship(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: internship})
}

// CreateHigherEducation creates a higher education record for the caller.
func (c *RecordController) CreateHigherEducation(ctx *gin.Context) {
	userID, ok := c.authedUser(ctx)
	if !ok {
		return
	}

	var req dto.HigherEducationRequest
	docRef, ok := c.bindCreate(ctx, &req, "highereducation")
	if !ok {
		return
	}

	higherEd, err := c.recordService.CreateHigherEducation(ctx.Request.Context(), userID, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Higher education create failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: higherEd})
}

// UpdateHigherEducation applies a partial update to a higher education record.
func (c *RecordController) UpdateHigherEducation(ctx *gin.Context) {
	if _, ok := c.authedUser(ctx); !ok {
		return
	}
	id, ok := recordID(ctx)
	if !ok {
		return
	}

	var req dto.HigherEducationUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	higherEd, err := c.recordService.UpdateHigherEducation(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: higherEd})
}

// CreateProject creates a project record for the caller.
func (c *RecordController) CreateProject(ctx *gin.Context) {
	userID, ok := c.authedUser(ctx)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	docRef, ok := c.bindCreate(ctx, &req, "projects")
	if !ok {
		return
	}

	project, err := c.recordService.CreateProject(ctx.Request.Context(), userID, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Project create failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: project})
}

// UpdateProject applies a partial update to a project record.
func (c *RecordController) UpdateProject(ctx *gin.Context) {
	if _, ok := c.authedUser(ctx); !ok {
		return
	}
	id, ok := recordID(ctx)
	if !ok {
		return
	}

	var req dto.ProjectUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.recordService.UpdateProject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: project})
}

// CreateAward creates an award record for the caller.
func (c *RecordController) CreateAward(ctx *gin.Context) {
	userID, ok := c.authedUser(ctx)
	if !ok {
		return
	}

	var req dto.AwardRequest
	docRef, ok := c.bindCreate(ctx, &req, "awards")
	if !ok {
		return
	}

	award, err := c.recordService.CreateAward(ctx.Request.Context(), userID, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Award create failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: award})
}

// UpdateAward applies a partial update to an award record.
func (c *RecordController) UpdateAward(ctx *gin.Context) {
	if _, ok := c.authedUser(ctx); !ok {
		return
	}
	id, ok := recordID(ctx)
	if !ok {
		return
	}

	var req dto.AwardUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	award, err := c.recordService.UpdateAward(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: award})
}

// CreateExam creates an exam record for the caller.
func (c *RecordController) CreateExam(ctx *gin.Context) {
	userID, ok := c.authedUser(ctx)
	if !ok {
		return
	}

	var req dto.ExamRequest
	docRef, ok := c.bindCreate(ctx, &req, "exams")
	if !ok {
		return
	}

	exam, err := c.recordService.CreateExam(ctx.Request.Context(), userID, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Exam create failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: exam})
}

// UpdateExam applies a partial update to an exam record.
func (c *RecordController) UpdateExam(ctx *gin.Context) {
	if _, ok := c.authedUser(ctx); !ok {
		return
	}
	id, ok := recordID(ctx)
	if !ok {
		return
	}

	var req dto.ExamUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exam, err := c.recordService.UpdateExam(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: exam})
}
