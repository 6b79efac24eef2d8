package dto

// CourseRequest carries the writable course fields. Create and update
// share the same shape because updates are full-field overwrites.
type CourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Subject     *string  `json:"subject,omitempty"`
	Description *string  `json:"description,omitempty"`
	MaterialURL *string  `json:"materialUrl,omitempty" binding:"omitempty,url"`
	AccessType  string   `json:"accessType" binding:"required,oneof=free paid"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Thumbnail   *string  `json:"thumbnail,omitempty" binding:"omitempty,url"`
	Level       *string  `json:"level,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
}
