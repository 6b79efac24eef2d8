package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role       RoleType  `json:"role" db:"role"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Bio        *string   `json:"bio,omitempty" db:"bio"`
	ProfilePic *string   `json:"profilePic,omitempty" db:"profile_pic"`
	Location   *string   `json:"location,omitempty" db:"location"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Teacher-only fields, NULL for students and admins
	Subject         *string `json:"subject,omitempty" db:"subject"`
	Qualification   *string `json:"qualification,omitempty" db:"qualification"`
	ExperienceYears *int    `json:"experienceYears,omitempty" db:"experience_years"`
	Linkedin        *string `json:"linkedin,omitempty" db:"linkedin"`
	Availability    *string `json:"availability,omitempty" db:"availability"`
}
