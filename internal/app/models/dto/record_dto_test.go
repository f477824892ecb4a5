package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacementRequestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, PlacementRequest{Company: "Acme", Role: "SWE"}.Validate())
	assert.Error(t, PlacementRequest{Role: "SWE"}.Validate())
	assert.Error(t, PlacementRequest{Company: "Acme"}.Validate())
}

func TestInternshipRequestValidate(t *testing.T) {
	t.Parallel()

	valid := InternshipRequest{
		Company:   "Acme",
		Role:      "Intern",
		StartDate: "2025-06-01",
		EndDate:   "2025-08-31",
	}
	assert.NoError(t, valid.Validate())

	missingRole := valid
	missingRole.Role = ""
	assert.Error(t, missingRole.Validate())

	badDate := valid
	badDate.StartDate = "01/06/2025"
	assert.Error(t, badDate.Validate())
}

func TestHigherEducationRequestValidate(t *testing.T) {
	t.Parallel()

	valid := HigherEducationRequest{
		Institution:  "MIT",
		Degree:       "MS",
		FieldOfStudy: "CS",
		StartDate:    "2026-09-01",
		EndDate:      "2028-06-01",
	}
	assert.NoError(t, valid.Validate())

	missingField := valid
	missingField.FieldOfStudy = ""
	assert.Error(t, missingField.Validate())
}

func TestProjectAndAwardRequestValidate(t *testing.T) {
	t.Parallel()

	// Description is optional for both.
	assert.NoError(t, ProjectRequest{Title: "Compiler"}.Validate())
	assert.Error(t, ProjectRequest{Description: "no title"}.Validate())

	assert.NoError(t, AwardRequest{Title: "Best Paper"}.Validate())
	assert.Error(t, AwardRequest{}.Validate())
}

func TestExamRequestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ExamRequest{Name: "GATE", Score: "720"}.Validate())
	assert.Error(t, ExamRequest{Name: "GATE"}.Validate())
	assert.Error(t, ExamRequest{Score: "720"}.Validate())
}
