package dto

// EnrollRequest represents an enrollment creation request. UserID is
// optional; when present it must match the authenticated user unless the
// caller is an admin.
type EnrollRequest struct {
	UserID   int64 `json:"user_id" binding:"omitempty,min=1"`
	CourseID int64 `json:"course_id" binding:"required,min=1"`
}

// ProgressUpdateRequest updates the progress of an enrollment
type ProgressUpdateRequest struct {
	Progress *int `json:"progress" binding:"required,min=0,max=100"`
}
