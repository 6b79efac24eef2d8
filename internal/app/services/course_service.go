package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/pkg/apperrors"
	"github.com/mentora/mentora/internal/pkg/cache"
	"github.com/mentora/mentora/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// coursePage is the cached shape of one catalog page
type coursePage struct {
	Courses []*models.Course `json:"courses"`
	Total   int64            `json:"total"`
}

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
	catalog    *cache.Cache
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService. catalog may wrap a nil
// redis client, in which case every read goes to the database.
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	catalog *cache.Cache,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

func applyCourseRequest(course *models.Course, req *dto.CourseRequest) {
	course.Title = req.Title
	course.Subject = req.Subject
	course.Description = req.Description
	course.MaterialURL = req.MaterialURL
	course.AccessType = models.AccessType(req.AccessType)
	course.Price = req.Price
	course.Thumbnail = req.Thumbnail
	course.Level = req.Level
	course.Duration = req.Duration
}

// CreateCourse creates a course owned by teacherID. The owner always comes
// from the verified token, never from the request body.
func (s *CourseService) CreateCourse(ctx context.Context, teacherID int64, req *dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{TeacherID: teacherID}
	applyCourseRequest(course, req)

	if course.AccessType == models.AccessPaid && (course.Price == nil || *course.Price <= 0) {
		return nil, fmt.Errorf("%w: paid courses require a positive price", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Int64("courseID", course.ID).Int64("teacherID", teacherID).Msg("Course created")
	return course, nil
}

// GetAllCourses returns one page of the catalog, served from the cache
// when possible.
func (s *CourseService) GetAllCourses(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	key := fmt.Sprintf("page:%d:size:%d", page, limit)

	var cached coursePage
	if err := s.catalog.Get(ctx, key, &cached); err == nil {
		return cached.Courses, helpers.NewPaginationInfo(cached.Total, page, limit), nil
	}

	courses, total, err := s.courseRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	if err := s.catalog.Set(ctx, key, coursePage{Courses: courses, Total: total}); err != nil &&
		!errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn().Err(err).Msg("Failed to cache course page")
	}

	return courses, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetCourseByID retrieves a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetCoursesByTeacher retrieves all courses owned by a teacher
func (s *CourseService) GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByTeacher(ctx, teacherID)
}

// UpdateCourse overwrites a course's fields. Only the owning teacher or an
// admin may update it.
func (s *CourseService) UpdateCourse(ctx context.Context, actorID int64, actorRole models.RoleType, courseID int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.TeacherID != actorID && actorRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only the course owner can update this course")
	}

	applyCourseRequest(course, req)

	if course.AccessType == models.AccessPaid && (course.Price == nil || *course.Price <= 0) {
		return nil, fmt.Errorf("%w: paid courses require a positive price", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return course, nil
}

// DeleteCourse deletes a course and its enrollments. Only the owning
// teacher or an admin may delete it.
func (s *CourseService) DeleteCourse(ctx context.Context, actorID int64, actorRole models.RoleType, courseID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.TeacherID != actorID && actorRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("only the course owner can delete this course")
	}

	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Int64("courseID", courseID).Int64("actorID", actorID).Msg("Course deleted")
	return nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.catalog.InvalidateAll(ctx); err != nil && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn().Err(err).Msg("Failed to invalidate course catalog cache")
	}
}
