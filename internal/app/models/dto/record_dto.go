package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"

// PlacementRequest represents placement creation fields; the supporting doc
// travels as multipart content.
type PlacementRequest struct {
	Company string `form:"company" json:"company"`
	Role    string `form:"role" json:"role"`
}

// Validate checks required placement fields.
func (r PlacementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Company, validation.Required),
		validation.Field(&r.Role, validation.Required),
	)
}

// InternshipRequest represents internship creation fields.
type InternshipRequest struct {
	Company   string `form:"company" json:"company"`
	Role      string `form:"role" json:"role"`
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
}

// Validate checks required internship fields.
func (r InternshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Company, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(DateLayout)),
	)
}

// HigherEducationRequest represents higher education creation fields.
type HigherEducationRequest struct {
	Institution  string `form:"institution" json:"institution"`
	Degree       string `form:"degree" json:"degree"`
	FieldOfStudy string `form:"fieldOfStudy" json:"fieldOfStudy"`
	StartDate    string `form:"startDate" json:"startDate"`
	EndDate      string `form:"endDate" json:"endDate"`
}

// Validate checks required higher education fields.
func (r HigherEducationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Institution, validation.Required),
		validation.Field(&r.Degree, validation.Required),
		validation.Field(&r.FieldOfStudy, validation.Required),
		validation.Field(&r.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(DateLayout)),
	)
}

// ProjectRequest represents project creation fields.
type ProjectRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// Validate checks required project fields.
func (r ProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// AwardRequest represents award creation fields.
type AwardRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// Validate checks required award fields.
func (r AwardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// ExamRequest represents exam creation fields.
type ExamRequest struct {
	Name  string `form:"name" json:"name"`
	Score string `form:"score" json:"score"`
}

// Validate checks required exam fields.
func (r ExamRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Score, validation.Required),
	)
}

// PlacementUpdateRequest represents a partial placement update.
type PlacementUpdateRequest struct {
	Company *string `json:"company,omitempty"`
	Role    *string `json:"role,omitempty"`
}

// InternshipUpdateRequest represents a partial internship update.
type InternshipUpdateRequest struct {
	Company   *string `json:"company,omitempty"`
	Role      *string `json:"role,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// HigherEducationUpdateRequest represents a partial higher education update.
type HigherEducationUpdateRequest struct {
	Institution  *string `json:"institution,omitempty"`
	Degree       *string `json:"degree,omitempty"`
	FieldOfStudy *string `json:"fieldOfStudy,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
}

// ProjectUpdateRequest represents a partial project update.
type ProjectUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AwardUpdateRequest represents a partial award update.
type AwardUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ExamUpdateRequest represents a partial exam update.
type ExamUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Score *string `json:"score,omitempty"`
}
