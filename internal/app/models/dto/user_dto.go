package dto

import (
	"github.com/studentvault/backend/internal/app/models"
)

// UpdateProfileRequest represents a partial profile update. Full name is not
// listed: it is immutable after registration.
type UpdateProfileRequest struct {
	RollNumber   *string `json:"rollNumber,omitempty"`
	Email        *string `json:"email,omitempty"`
	Branch       *string `json:"branch,omitempty"`
	Section      *string `json:"section,omitempty"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	Semester     *string `json:"semester,omitempty"`
	CGPA         *string `json:"cgpa,omitempty"`
	Password     *string `json:"password,omitempty"`
}

// UserResponse represents user profile information without credential fields.
type UserResponse struct {
	ID             int64         `json:"id"`
	Username       string        `json:"username"`
	FullName       string        `json:"fullName"`
	RollNumber     string        `json:"rollNumber"`
	Email          string        `json:"email"`
	IDCard         models.DocRef `json:"idCard"`
	Branch         string        `json:"branch"`
	Section        string        `json:"section"`
	Image          models.DocRef `json:"image,omitempty"`
	MobileNumber   string        `json:"mobileNumber"`
	Semester       string        `json:"semester"`
	IsVerified     bool          `json:"isVerified"`
	CGPA           string        `json:"cgpa"`
	PlacementOne   *int64        `json:"placementOne,omitempty"`
	PlacementTwo   *int64        `json:"placementTwo,omitempty"`
	PlacementThree *int64        `json:"placementThree,omitempty"`
	Projects       []int64       `json:"projects"`
	Awards         []int64       `json:"awards"`
	HigherEds      []int64       `json:"higherEducations"`
	Internships    []int64       `json:"internships"`
	Exams          []int64       `json:"exams"`
}

// NewUserResponse builds a UserResponse from a user aggregate, dropping the
// password hash and refresh token.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		FullName:       user.FullName,
		RollNumber:     user.RollNumber,
		Email:          user.Email,
		IDCard:         user.IDCardRef,
		Branch:         user.Branch,
		Section:        user.Section,
		Image:          user.ImageRef,
		MobileNumber:   user.MobileNumber,
		Semester:       user.Semester,
		IsVerified:     user.IsVerified,
		CGPA:           user.CGPA,
		PlacementOne:   user.PlacementOne,
		PlacementTwo:   user.PlacementTwo,
		PlacementThree: user.PlacementThree,
		Projects:       user.Projects,
		Awards:         user.Awards,
		HigherEds:      user.HigherEds,
		Internships:    user.Internships,
		Exams:          user.Exams,
	}
}
