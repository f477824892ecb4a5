package dto

// RegisterRequest represents a user registration request. The id card file
// itself travels as multipart content next to these fields.
type RegisterRequest struct {
	Username     string `form:"username" json:"username" binding:"required"`
	Password     string `form:"password" json:"password" binding:"required"`
	FullName     string `form:"fullName" json:"fullName" binding:"required"`
	RollNumber   string `form:"rollNumber" json:"rollNumber" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required,email"`
	Branch       string `form:"branch" json:"branch"`
	Section      string `form:"section" json:"section"`
	MobileNumber string `form:"mobileNumber" json:"mobileNumber"`
	Semester     string `form:"semester" json:"semester"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents issued token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}
