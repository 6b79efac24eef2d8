package services

import (
	"context"
	"errors"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/pkg/cache"
	"github.com/rs/zerolog"
)

// AdminService handles admin-only operations. Role enforcement happens in
// the middleware; these methods assume the caller is an admin.
type AdminService struct {
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
	catalog    *cache.Cache
	logger     zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	catalog *cache.Cache,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

// ListAllUsers returns every user record
func (s *AdminService) ListAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// DeleteUser hard-deletes a user together with their courses and
// enrollments.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Deleted teacher courses may still sit in cached catalog pages
	s.invalidateCatalog(ctx)
	s.logger.Info().Int64("userID", id).Msg("User deleted by admin")
	return nil
}

// DeleteCoursesByTeacher bulk-deletes a teacher's courses and returns how
// many were removed.
func (s *AdminService) DeleteCoursesByTeacher(ctx context.Context, teacherID int64) (int64, error) {
	deleted, err := s.courseRepo.DeleteByTeacher(ctx, teacherID)
	if err != nil {
		return 0, err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Int64("teacherID", teacherID).Int64("deleted", deleted).Msg("Teacher courses deleted by admin")
	return deleted, nil
}

func (s *AdminService) invalidateCatalog(ctx context.Context) {
	if err := s.catalog.InvalidateAll(ctx); err != nil && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn().Err(err).Msg("Failed to invalidate course catalog cache")
	}
}
