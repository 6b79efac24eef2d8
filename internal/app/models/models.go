package models

// RoleType represents a user's role in the marketplace
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// AccessType represents how a course is purchased
type AccessType string

const (
	AccessFree AccessType = "free"
	AccessPaid AccessType = "paid"
)
