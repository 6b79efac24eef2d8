package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/db"
	"github.com/mentora/mentora/internal/pkg/apperrors"
	"github.com/mentora/mentora/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password, role, phone, bio, profile_pic, location,
		subject, qualification, experience_years, linkedin, availability, created_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Phone,
		&user.Bio,
		&user.ProfilePic,
		&user.Location,
		&user.Subject,
		&user.Qualification,
		&user.ExperienceYears,
		&user.Linkedin,
		&user.Availability,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns its id.
// The unique index on email is the source of truth for duplicates.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password, role, phone, bio, profile_pic, location,
			subject, qualification, experience_years, linkedin, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.Phone,
		user.Bio,
		user.ProfilePic,
		user.Location,
		user.Subject,
		user.Qualification,
		user.ExperienceYears,
		user.Linkedin,
		user.Availability,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks whether an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateProfile updates the mutable profile fields of a user. Email, role
// and password are untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, bio = $3, profile_pic = $4, location = $5,
			subject = $6, qualification = $7, experience_years = $8, linkedin = $9, availability = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		user.Name,
		user.Phone,
		user.Bio,
		user.ProfilePic,
		user.Location,
		user.Subject,
		user.Qualification,
		user.ExperienceYears,
		user.Linkedin,
		user.Availability,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user together with their courses and every enrollment
// touching either, inside a single transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM enrollments WHERE user_id = $1
				OR course_id IN (SELECT id FROM courses WHERE teacher_id = $1)`, id); err != nil {
			return fmt.Errorf("error deleting user enrollments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE teacher_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting user courses: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}
