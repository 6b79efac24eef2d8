package services

import (
	"context"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/pkg/apperrors"
)

// UserService handles profile management
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateProfile mutates a user's profile fields. Users can only edit their
// own profile; admins can edit anyone's. Email, role and password stay
// unchanged through this path.
func (s *UserService) UpdateProfile(ctx context.Context, actorID int64, actorRole models.RoleType, targetID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if targetID != actorID && actorRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("cannot edit another user's profile")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Bio = req.Bio
	user.ProfilePic = req.ProfilePic
	user.Location = req.Location

	if user.Role == models.RoleTeacher {
		user.Subject = req.Subject
		user.Qualification = req.Qualification
		user.ExperienceYears = req.ExperienceYears
		user.Linkedin = req.Linkedin
		user.Availability = req.Availability
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
