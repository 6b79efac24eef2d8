package dto

import "github.com/mentora/mentora/internal/app/models"

// SignupRequest represents an account creation request.
// Admin accounts are seeded, not self-registered.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student teacher"`

	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`

	// Teacher-only fields
	Subject         *string `json:"subject,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty" binding:"omitempty,min=0"`
	Linkedin        *string `json:"linkedin,omitempty"`
	Availability    *string `json:"availability,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents signed token information
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"`
}

// UserResponse represents basic user information returned to clients
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
