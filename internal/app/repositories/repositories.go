package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository error types
var (
	ErrCourseNotFound        = errors.New("course not found")
	ErrCourseAlreadyExists   = errors.New("course with this course code already exists")
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentAlreadyExists  = errors.New("student with this student id already exists")
	ErrLecturerNotFound      = errors.New("lecturer not found")
	ErrLecturerAlreadyExists = errors.New("lecturer with this lecturer id already exists")
	ErrCourseAlreadyAssigned = errors.New("course already has a lecturer assigned")
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   *CourseRepository
	StudentRepository  *StudentRepository
	LecturerRepository *LecturerRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		StudentRepository:  NewStudentRepository(db),
		LecturerRepository: NewLecturerRepository(db),
	}
}
