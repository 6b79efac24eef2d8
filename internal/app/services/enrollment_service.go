package services

import (
	"context"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// EnrollmentService handles the enrollment ledger
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Enroll creates an enrollment. The body may carry a user_id for
// compatibility with older clients; it must match the authenticated user
// unless the actor is an admin enrolling on someone's behalf.
func (s *EnrollmentService) Enroll(ctx context.Context, actorID int64, actorRole models.RoleType, req *dto.EnrollRequest) (*models.Enrollment, error) {
	userID := actorID
	if req.UserID != 0 && req.UserID != actorID {
		if actorRole != models.RoleAdmin {
			return nil, apperrors.NewForbiddenError("cannot enroll another user")
		}
		userID = req.UserID
	}

	enrollment, err := s.enrollmentRepo.Create(ctx, userID, req.CourseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Int64("courseID", req.CourseID).Msg("User enrolled")
	return enrollment, nil
}

// GetEnrolledCourses returns the courses a user is enrolled in. Users can
// only read their own list; admins can read anyone's.
func (s *EnrollmentService) GetEnrolledCourses(ctx context.Context, actorID int64, actorRole models.RoleType, userID int64) ([]*models.Course, error) {
	if userID != actorID && actorRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("cannot list another user's enrollments")
	}

	return s.enrollmentRepo.GetCoursesByUser(ctx, userID)
}

// Cancel removes the authenticated user's enrollment in a course
func (s *EnrollmentService) Cancel(ctx context.Context, actorID, courseID int64) error {
	if err := s.enrollmentRepo.DeleteByUserAndCourse(ctx, actorID, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", actorID).Int64("courseID", courseID).Msg("Enrollment cancelled")
	return nil
}

// UpdateProgress sets the authenticated user's progress in a course
func (s *EnrollmentService) UpdateProgress(ctx context.Context, actorID, courseID int64, progress int) error {
	return s.enrollmentRepo.UpdateProgress(ctx, actorID, courseID, progress)
}
