package repositories

import (
	"context"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/db"
)

// IUserRepository defines user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// ICourseRepository defines course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	DeleteByTeacher(ctx context.Context, teacherID int64) (int64, error)
}

// IEnrollmentRepository defines enrollment-ledger database operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	GetCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error)
	DeleteByUserAndCourse(ctx context.Context, userID, courseID int64) error
	UpdateProgress(ctx context.Context, userID, courseID int64, progress int) error
}

// Repositories bundles all repositories for dependency wiring
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates the repository container
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		CourseRepository:     NewCourseRepository(database),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}
