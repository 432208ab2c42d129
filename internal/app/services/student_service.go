package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/repositories"
	"github.com/jkcodespace/academics/internal/pkg/apperrors"
	"github.com/jkcodespace/academics/internal/pkg/logger"
)

// StudentService defines the CRUD operations on students
type StudentService interface {
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, studentID string) (bool, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	rel      *RelationshipManager
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, rel *RelationshipManager) StudentService {
	return &studentServiceImpl{
		students: students,
		rel:      rel,
	}
}

// validateStudent validates student data before store operations
func validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.StudentID) == "" {
		return fmt.Errorf("%w: student id cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetStudent retrieves a student by student id with enrollments loaded
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Cannot find Student with id %s", studentID))
	}

	if err := s.rel.LoadStudentRelations(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents retrieves all students with enrollments loaded
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	logger.Debug().Msg("Attempting to get all students")

	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	for _, student := range students {
		if err := s.rel.LoadStudentRelations(ctx, student); err != nil {
			return nil, err
		}
	}

	return students, nil
}

// CreateStudent creates a new student with an empty enrollment set
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	logger.Info().Str("studentId", student.StudentID).Msg("Attempting to create student")

	existing, err := s.students.GetByStudentID(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("A Student with Student id: %s already exists", student.StudentID))
	}

	created := &models.Student{
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
	}

	if err := s.students.Create(ctx, created); err != nil {
		if errors.Is(err, repositories.ErrStudentAlreadyExists) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("A Student with Student id: %s already exists", student.StudentID))
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	created.Courses = []*models.Course{}
	return created, nil
}

// UpdateStudent overwrites a student's descriptive attributes. The student
// id identifies the target and is never changed; enrollments are mutated
// only through the enrollment operations.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	logger.Info().Str("studentId", student.StudentID).Msg("Attempting to update student")

	existing, err := s.students.GetByStudentID(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("A Student with Student id: %s does not exist. Cannot update", student.StudentID))
	}

	existing.FirstName = student.FirstName
	existing.LastName = student.LastName

	if err := s.students.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	if err := s.rel.LoadStudentRelations(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteStudent removes a student after clearing its enrollment set, so the
// student disappears from every course's derived view of attendees.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) (bool, error) {
	logger.Info().Str("studentId", studentID).Msg("Attempting to delete student")

	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return false, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("A Student with Student id: %s does not exist. Cannot delete", studentID))
	}

	if err := s.rel.CascadeStudentDelete(ctx, student); err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Cascade repair failed during student delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Student with Student id %s", studentID))
	}

	if err := s.students.Delete(ctx, student.ID); err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Store failure during student delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Student with Student id %s", studentID))
	}

	return true, nil
}
