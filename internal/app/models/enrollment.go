package models

import "time"

// Enrollment is a join record linking a user and a course.
// (UserID, CourseID) is unique at the storage layer.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	CourseID       int64     `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	Progress       int       `json:"progress" db:"progress"`

	// Relation, populated when needed
	Course *Course `json:"course,omitempty"`
}
