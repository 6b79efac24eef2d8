package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/db"
	"github.com/mentora/mentora/internal/pkg/apperrors"
)

const courseColumns = `c.id, c.teacher_id, c.title, c.subject, c.description, c.material_url,
		c.access_type, c.price, c.thumbnail, c.level, c.duration, c.rating, c.created_at,
		(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{
		db: database,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.TeacherID,
		&course.Title,
		&course.Subject,
		&course.Description,
		&course.MaterialURL,
		&course.AccessType,
		&course.Price,
		&course.Thumbnail,
		&course.Level,
		&course.Duration,
		&course.Rating,
		&course.CreatedAt,
		&course.EnrollmentCount,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (teacher_id, title, subject, description, material_url,
			access_type, price, thumbnail, level, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		course.TeacherID,
		course.Title,
		course.Subject,
		course.Description,
		course.MaterialURL,
		course.AccessType,
		course.Price,
		course.Thumbnail,
		course.Level,
		course.Duration,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its derived enrollment count
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses c WHERE c.id = $1`, courseColumns)

	course, err := scanCourse(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves a page of courses and the total course count
func (r *CourseRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM courses c
		ORDER BY c.created_at DESC
		OFFSET $1 LIMIT $2`, courseColumns)

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetByTeacher retrieves all courses owned by a teacher
func (r *CourseRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courses c
		WHERE c.teacher_id = $1
		ORDER BY c.created_at DESC`, courseColumns)

	rows, err := r.db.Pool.Query(ctx, query, teacherID)
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

// Update overwrites all writable fields of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, subject = $2, description = $3, material_url = $4,
			access_type = $5, price = $6, thumbnail = $7, level = $8, duration = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		course.Title,
		course.Subject,
		course.Description,
		course.MaterialURL,
		course.AccessType,
		course.Price,
		course.Thumbnail,
		course.Level,
		course.Duration,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and its enrollments in one transaction so the
// ledger never holds rows for a course that no longer exists.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		return nil
	})
}

// DeleteByTeacher removes every course of a teacher together with their
// enrollments and returns how many courses were deleted.
func (r *CourseRepository) DeleteByTeacher(ctx context.Context, teacherID int64) (int64, error) {
	var deleted int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM enrollments WHERE course_id IN (SELECT id FROM courses WHERE teacher_id = $1)`,
			teacherID); err != nil {
			return fmt.Errorf("error deleting teacher enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE teacher_id = $1`, teacherID)
		if err != nil {
			return fmt.Errorf("error deleting teacher courses: %w", err)
		}

		deleted = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
