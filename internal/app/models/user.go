package models

import (
	"time"
)

// DocRef is an opaque reference to a stored supporting document. The core never
// inspects its contents; only the document store produces and resolves them.
type DocRef string

// User defines the student profile aggregate based on the 'users' table.
// The password column always holds a bcrypt hash, never the original password.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"` // stored lowercased and trimmed
	Password       string    `json:"-" db:"password"`        // bcrypt hash, excluded from JSON
	FullName       string    `json:"fullName" db:"full_name"`
	RollNumber     string    `json:"rollNumber" db:"roll_number"`
	Email          string    `json:"email" db:"email"` // stored lowercased
	IDCardRef      DocRef    `json:"idCard" db:"id_card_ref"`
	Branch         string    `json:"branch" db:"branch"`
	Section        string    `json:"section" db:"section"`
	ImageRef       DocRef    `json:"image" db:"image_ref"`
	MobileNumber   string    `json:"mobileNumber" db:"mobile_number"` // exactly 10 digits
	Semester       string    `json:"semester" db:"semester"`
	IsVerified     bool      `json:"isVerified" db:"is_verified"`
	CGPA           string    `json:"cgpa" db:"cgpa"`
	PlacementOne   *int64    `json:"placementOne,omitempty" db:"placement_one"`
	PlacementTwo   *int64    `json:"placementTwo,omitempty" db:"placement_two"`
	PlacementThree *int64    `json:"placementThree,omitempty" db:"placement_three"`
	Projects       []int64   `json:"projects" db:"projects"`
	Awards         []int64   `json:"awards" db:"awards"`
	HigherEds      []int64   `json:"higherEducations" db:"higher_educations"`
	Internships    []int64   `json:"internships" db:"internships"`
	Exams          []int64   `json:"exams" db:"exams"`
	RefreshToken   string    `json:"-" db:"refresh_token"` // single slot, empty when logged out
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultMobileNumber is the all-zero sentinel used when no number was provided.
const DefaultMobileNumber = "0000000000"

// SatelliteKind identifies which reference list on the User a record belongs to.
type SatelliteKind string

const (
	KindProject         SatelliteKind = "PROJECT"
	KindAward           SatelliteKind = "AWARD"
	KindHigherEducation SatelliteKind = "HIGHER_EDUCATION"
	KindInternship      SatelliteKind = "INTERNSHIP"
	KindExam            SatelliteKind = "EXAM"
)
