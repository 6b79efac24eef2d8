package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/db"
	"github.com/mentora/mentora/internal/pkg/apperrors"
)

// EnrollmentRepository handles database operations for the enrollment ledger
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
	}
}

// Create inserts an enrollment for (userID, courseID). The insert is
// conditional on the unique (user_id, course_id) index, so two concurrent
// identical requests cannot both succeed; the loser sees ErrAlreadyEnrolled.
// A missing course surfaces as ErrCourseNotFound via the foreign key.
func (r *EnrollmentRepository) Create(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
		RETURNING id, enrollment_date, progress
	`

	var enrollment models.Enrollment
	enrollment.UserID = userID
	enrollment.CourseID = courseID

	err := r.db.Pool.QueryRow(ctx, query, userID, courseID).Scan(
		&enrollment.ID,
		&enrollment.EnrollmentDate,
		&enrollment.Progress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict path: the pair already exists
			return nil, apperrors.ErrAlreadyEnrolled
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "enrollments_user_id_fkey" {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetCoursesByUser returns the full course rows a user is enrolled in,
// most recent enrollment first.
func (r *EnrollmentRepository) GetCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.teacher_id, c.title, c.subject, c.description, c.material_url,
			c.access_type, c.price, c.thumbnail, c.level, c.duration, c.rating, c.created_at,
			(SELECT COUNT(*) FROM enrollments e2 WHERE e2.course_id = c.id) AS enrollment_count
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.enrollment_date DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// DeleteByUserAndCourse removes the enrollment identified by the
// (user, course) pair.
func (r *EnrollmentRepository) DeleteByUserAndCourse(ctx context.Context, userID, courseID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// UpdateProgress sets the progress of the (user, course) enrollment
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID int64, progress int) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`UPDATE enrollments SET progress = $1 WHERE user_id = $2 AND course_id = $3`,
		progress, userID, courseID)
	if err != nil {
		return fmt.Errorf("error updating enrollment progress: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
