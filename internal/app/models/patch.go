package models

import "time"

// UserPatch describes a partial profile update. Nil fields are left untouched.
// FullName is absent on purpose: it is immutable after registration. Password,
// when present, must already be hashed by the caller.
type UserPatch struct {
	RollNumber   *string
	Email        *string
	Branch       *string
	Section      *string
	ImageRef     *DocRef
	MobileNumber *string
	Semester     *string
	CGPA         *string
	Password     *string
}

// PlacementPatch describes a partial placement update.
type PlacementPatch struct {
	Company *string
	Role    *string
	DocRef  *DocRef
}

// InternshipPatch describes a partial internship update.
type InternshipPatch struct {
	Company   *string
	Role      *string
	StartDate *time.Time
	EndDate   *time.Time
	DocRef    *DocRef
}

// HigherEducationPatch describes a partial higher education update.
type HigherEducationPatch struct {
	Institution  *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *time.Time
	EndDate      *time.Time
	DocRef       *DocRef
}

// ProjectPatch describes a partial project update.
type ProjectPatch struct {
	Title       *string
	Description *string
	DocRef      *DocRef
}

// AwardPatch describes a partial award update.
type AwardPatch struct {
	Title       *string
	Description *string
	DocRef      *DocRef
}

// ExamPatch describes a partial exam update.
type ExamPatch struct {
	Name   *string
	Score  *string
	DocRef *DocRef
}
