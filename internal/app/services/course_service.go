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

// CourseService defines the operations on courses, including the enrollment
// and assignment operations that tie courses to students and lecturers.
type CourseService interface {
	GetCourse(ctx context.Context, courseCode string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseCode string) (bool, error)
	EnrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error)
	UnenrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error)
	AssignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error)
	DeassignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses   CourseStore
	students  StudentStore
	lecturers LecturerStore
	rel       *RelationshipManager
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, students StudentStore, lecturers LecturerStore, rel *RelationshipManager) CourseService {
	return &courseServiceImpl{
		courses:   courses,
		students:  students,
		lecturers: lecturers,
		rel:       rel,
	}
}

// validateCourse validates course data before store operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetCourse retrieves a course by course code with its relations loaded
func (s *courseServiceImpl) GetCourse(ctx context.Context, courseCode string) (*models.Course, error) {
	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if course == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Cannot find Course with code %s", courseCode))
	}

	if err := s.rel.LoadCourseRelations(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllCourses retrieves all courses with their relations loaded
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	logger.Debug().Msg("Attempting to get all courses")

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	for _, course := range courses {
		if err := s.rel.LoadCourseRelations(ctx, course); err != nil {
			return nil, err
		}
	}

	return courses, nil
}

// CreateCourse creates a new course. The course starts with no enrollments
// and no lecturer regardless of what the caller supplied.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	logger.Info().Str("courseCode", course.Code).Msg("Attempting to create course")

	existing, err := s.courses.GetByCode(ctx, course.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking course existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("A Course with Course code: %s already exists", course.Code))
	}

	created := &models.Course{
		Code:        course.Code,
		Name:        course.Name,
		Description: course.Description,
	}

	if err := s.courses.Create(ctx, created); err != nil {
		// The check-then-act sequence is not atomic; the unique constraint
		// catches a concurrent create of the same code.
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("A Course with Course code: %s already exists", course.Code))
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	created.Students = []*models.Student{}
	return created, nil
}

// UpdateCourse overwrites a course's descriptive attributes. The course code
// identifies the target and is never changed; enrollments and the lecturer
// are mutated only through the dedicated operations.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	logger.Info().Str("courseCode", course.Code).Msg("Attempting to update course")

	existing, err := s.courses.GetByCode(ctx, course.Code)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("A Course with Course code: %s does not exist. Cannot update", course.Code))
	}

	existing.Name = course.Name
	existing.Description = course.Description

	if err := s.courses.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	if err := s.rel.LoadCourseRelations(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteCourse removes a course after repairing every relationship that
// touches it: enrolled students are disassociated and an assigned lecturer
// is deassigned before the course row goes away.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, courseCode string) (bool, error) {
	logger.Info().Str("courseCode", courseCode).Msg("Attempting to delete course")

	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return false, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("A Course with Course code: %s does not exist. Cannot delete", courseCode))
	}

	if err := s.rel.CascadeCourseDelete(ctx, course); err != nil {
		logger.Error().Err(err).Str("courseCode", courseCode).Msg("Cascade repair failed during course delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Course with Course Code %s", courseCode))
	}

	if err := s.courses.Delete(ctx, course.ID); err != nil {
		logger.Error().Err(err).Str("courseCode", courseCode).Msg("Store failure during course delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Course with Course Code %s", courseCode))
	}

	return true, nil
}

// EnrollStudent adds a course to a student's enrollment set and returns the
// student with the enrollment reflected.
func (s *courseServiceImpl) EnrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
	logger.Info().Str("studentId", studentID).Str("courseCode", courseCode).Msg("Attempting to enroll student in course")

	student, course, err := s.getStudentAndCourse(ctx, studentID, courseCode, "enrollment")
	if err != nil {
		return nil, err
	}

	if err := s.rel.Enroll(ctx, student, course); err != nil {
		return nil, err
	}

	if err := s.rel.LoadStudentRelations(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// UnenrollStudent removes a course from a student's enrollment set. The
// removal is tolerated as a no-op when the student was never enrolled.
func (s *courseServiceImpl) UnenrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
	logger.Info().Str("studentId", studentID).Str("courseCode", courseCode).Msg("Attempting to unenroll student from course")

	student, course, err := s.getStudentAndCourse(ctx, studentID, courseCode, "unenrollment")
	if err != nil {
		return nil, err
	}

	if err := s.rel.Unenroll(ctx, student, course); err != nil {
		return nil, err
	}

	if err := s.rel.LoadStudentRelations(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// AssignLecturer assigns a lecturer to a course and returns the lecturer
// with the assignment visible. Fails with a conflict when the course already
// has a different lecturer.
func (s *courseServiceImpl) AssignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
	logger.Info().Str("lecturerId", lecturerID).Str("courseCode", courseCode).Msg("Attempting to assign lecturer to course")

	lecturer, course, err := s.getLecturerAndCourse(ctx, lecturerID, courseCode, "assignment")
	if err != nil {
		return nil, err
	}

	if err := s.rel.Assign(ctx, lecturer, course); err != nil {
		return nil, err
	}

	lecturer.CourseID = &course.ID
	lecturer.Course = course

	return lecturer, nil
}

// DeassignLecturer clears a lecturer's assignment unconditionally and
// returns the lecturer without a course.
func (s *courseServiceImpl) DeassignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
	logger.Info().Str("lecturerId", lecturerID).Str("courseCode", courseCode).Msg("Attempting to deassign lecturer from course")

	lecturer, _, err := s.getLecturerAndCourse(ctx, lecturerID, courseCode, "deassignment")
	if err != nil {
		return nil, err
	}

	if err := s.rel.Deassign(ctx, lecturer); err != nil {
		return nil, err
	}

	lecturer.CourseID = nil
	lecturer.Course = nil

	return lecturer, nil
}

// getStudentAndCourse resolves both keys of an enrollment operation, failing
// with not found for whichever is absent.
func (s *courseServiceImpl) getStudentAndCourse(ctx context.Context, studentID, courseCode, operation string) (*models.Student, *models.Course, error) {
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("A Student with Student id: %s does not exist. Cannot complete %s", studentID, operation))
	}

	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("A Course with Course code: %s does not exist. Cannot complete %s", courseCode, operation))
	}

	return student, course, nil
}

// getLecturerAndCourse resolves both keys of an assignment operation.
func (s *courseServiceImpl) getLecturerAndCourse(ctx context.Context, lecturerID, courseCode, operation string) (*models.Lecturer, *models.Course, error) {
	lecturer, err := s.lecturers.GetByLecturerID(ctx, lecturerID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}
	if lecturer == nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("A Lecturer with Lecturer id: %s does not exist. Cannot complete %s", lecturerID, operation))
	}

	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("A Course with Course code: %s does not exist. Cannot complete %s", courseCode, operation))
	}

	return lecturer, course, nil
}
