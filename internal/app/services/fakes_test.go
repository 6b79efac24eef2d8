package services

// In-memory repository fakes backing the service tests. They mirror the
// error contracts of the SQL repositories so services see the same
// sentinels either way.

import (
	"context"
	"sort"
	"time"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.nextID++
	course.ID = r.nextID
	course.CreatedAt = time.Now()
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCourseRepo) sorted() []*models.Course {
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeCourseRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	all := r.sorted()
	total := int64(len(all))

	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeCourseRepo) GetByTeacher(_ context.Context, teacherID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.sorted() {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) DeleteByTeacher(_ context.Context, teacherID int64) (int64, error) {
	var deleted int64
	for id, c := range r.courses {
		if c.TeacherID == teacherID {
			delete(r.courses, id)
			deleted++
		}
	}
	return deleted, nil
}

type enrollmentKey struct {
	userID int64
	course int64
}

type fakeEnrollmentRepo struct {
	enrollments map[enrollmentKey]*models.Enrollment
	courseRepo  *fakeCourseRepo
	nextID      int64
}

func newFakeEnrollmentRepo(courseRepo *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: make(map[enrollmentKey]*models.Enrollment),
		courseRepo:  courseRepo,
	}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	if r.courseRepo != nil {
		if _, ok := r.courseRepo.courses[courseID]; !ok {
			return nil, apperrors.ErrCourseNotFound
		}
	}

	key := enrollmentKey{userID: userID, course: courseID}
	if _, ok := r.enrollments[key]; ok {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	r.nextID++
	e := &models.Enrollment{
		ID:             r.nextID,
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: time.Now(),
	}
	r.enrollments[key] = e
	clone := *e
	return &clone, nil
}

func (r *fakeEnrollmentRepo) GetCoursesByUser(_ context.Context, userID int64) ([]*models.Course, error) {
	var out []*models.Course
	for key := range r.enrollments {
		if key.userID != userID {
			continue
		}
		if c, ok := r.courseRepo.courses[key.course]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEnrollmentRepo) DeleteByUserAndCourse(_ context.Context, userID, courseID int64) error {
	key := enrollmentKey{userID: userID, course: courseID}
	if _, ok := r.enrollments[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(r.enrollments, key)
	return nil
}

func (r *fakeEnrollmentRepo) UpdateProgress(_ context.Context, userID, courseID int64, progress int) error {
	key := enrollmentKey{userID: userID, course: courseID}
	e, ok := r.enrollments[key]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	e.Progress = progress
	return nil
}
