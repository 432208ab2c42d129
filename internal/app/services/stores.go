package services

import (
	"context"

	"github.com/jkcodespace/academics/internal/app/models"
)

// The services consume the persistence layer through these per-entity store
// interfaces. Lookups by key return nil without error when no record exists;
// the services translate absence into domain errors. The pgx repositories in
// internal/app/repositories implement them against PostgreSQL.

// CourseStore is the persistence surface for courses.
type CourseStore interface {
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	GetStudents(ctx context.Context, courseID int64) ([]*models.Student, error)
}

// StudentStore is the persistence surface for students and their
// student-owned enrollment rows.
type StudentStore interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetCourses(ctx context.Context, studentID int64) ([]*models.Course, error)
	AddCourse(ctx context.Context, studentID, courseID int64) error
	RemoveCourse(ctx context.Context, studentID, courseID int64) error
	RemoveAllCourses(ctx context.Context, studentID int64) error
}

// LecturerStore is the persistence surface for lecturers and their course
// assignment.
type LecturerStore interface {
	GetByLecturerID(ctx context.Context, lecturerID string) (*models.Lecturer, error)
	GetByCourseID(ctx context.Context, courseID int64) (*models.Lecturer, error)
	GetAll(ctx context.Context) ([]*models.Lecturer, error)
	Create(ctx context.Context, lecturer *models.Lecturer) error
	Update(ctx context.Context, lecturer *models.Lecturer) error
	Delete(ctx context.Context, id int64) error
	SetCourse(ctx context.Context, lecturerID int64, courseID *int64) error
}
