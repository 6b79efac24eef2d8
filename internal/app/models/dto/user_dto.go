package dto

// UpdateProfileRequest represents profile update data. Role and email are
// not updatable through this endpoint.
type UpdateProfileRequest struct {
	Name       string  `json:"name" binding:"required"`
	Phone      *string `json:"phone,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty" binding:"omitempty,url"`
	Location   *string `json:"location,omitempty"`

	// Teacher-only fields, ignored for other roles
	Subject         *string `json:"subject,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty" binding:"omitempty,min=0"`
	Linkedin        *string `json:"linkedin,omitempty"`
	Availability    *string `json:"availability,omitempty"`
}
