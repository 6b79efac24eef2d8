package models

import "time"

// Course represents a course offered by a teacher.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	TeacherID   int64      `json:"teacherId" db:"teacher_id"`
	Title       string     `json:"title" db:"title"`
	Subject     *string    `json:"subject,omitempty" db:"subject"`
	Description *string    `json:"description,omitempty" db:"description"`
	MaterialURL *string    `json:"materialUrl,omitempty" db:"material_url"`
	AccessType  AccessType `json:"accessType" db:"access_type"`
	Price       *float64   `json:"price,omitempty" db:"price"`
	Thumbnail   *string    `json:"thumbnail,omitempty" db:"thumbnail"`
	Level       *string    `json:"level,omitempty" db:"level"`
	Duration    *string    `json:"duration,omitempty" db:"duration"`
	Rating      *float64   `json:"rating,omitempty" db:"rating"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	// Derived from the enrollments table, never stored
	EnrollmentCount int64 `json:"enrollmentCount" db:"enrollment_count"`
}
