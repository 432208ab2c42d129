package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/repositories"
	"github.com/jkcodespace/academics/internal/pkg/apperrors"
)

// RelationshipManager maintains the consistency of the enrollment and
// assignment relationships of the course/student/lecturer graph. Enrollment
// is owned by the student side; a course's student set is the inverse query.
// A course carries at most one lecturer at a time.
//
// Cascade repairs are individually persisted single-row writes executed
// before the owning row is deleted. They are deliberately not wrapped in one
// transaction: a crash mid-cascade can leave the graph partially repaired,
// but repaired rows never point at a row that was deleted before them.
type RelationshipManager struct {
	courses   CourseStore
	students  StudentStore
	lecturers LecturerStore
}

// NewRelationshipManager creates a new relationship manager over the stores
func NewRelationshipManager(courses CourseStore, students StudentStore, lecturers LecturerStore) *RelationshipManager {
	return &RelationshipManager{
		courses:   courses,
		students:  students,
		lecturers: lecturers,
	}
}

// Enroll adds a course to a student's enrollment set. Enrolling an already
// enrolled pair is a no-op; the set never holds duplicates.
func (m *RelationshipManager) Enroll(ctx context.Context, student *models.Student, course *models.Course) error {
	if err := m.students.AddCourse(ctx, student.ID, course.ID); err != nil {
		return fmt.Errorf("error enrolling student %s in course %s: %w", student.StudentID, course.Code, err)
	}
	return nil
}

// Unenroll removes a course from a student's enrollment set. Removing an
// absent course is a no-op.
func (m *RelationshipManager) Unenroll(ctx context.Context, student *models.Student, course *models.Course) error {
	if err := m.students.RemoveCourse(ctx, student.ID, course.ID); err != nil {
		return fmt.Errorf("error unenrolling student %s from course %s: %w", student.StudentID, course.Code, err)
	}
	return nil
}

// Assign sets a lecturer's course assignment. It fails with a conflict when
// the course already has a different lecturer; re-assigning the same
// lecturer to the same course is idempotent.
func (m *RelationshipManager) Assign(ctx context.Context, lecturer *models.Lecturer, course *models.Course) error {
	current, err := m.lecturers.GetByCourseID(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error checking course assignment: %w", err)
	}

	if current != nil {
		if current.ID == lecturer.ID {
			return nil
		}
		return apperrors.NewConflictError(fmt.Sprintf("Course %s already has a lecturer assigned to it", course.Code))
	}

	if err := m.lecturers.SetCourse(ctx, lecturer.ID, &course.ID); err != nil {
		// Concurrent assignment can slip past the check; the store's unique
		// constraint is the last-resort guard.
		if errors.Is(err, repositories.ErrCourseAlreadyAssigned) {
			return apperrors.NewConflictError(fmt.Sprintf("Course %s already has a lecturer assigned to it", course.Code))
		}
		return fmt.Errorf("error assigning lecturer %s to course %s: %w", lecturer.LecturerID, course.Code, err)
	}

	return nil
}

// Deassign clears a lecturer's course assignment unconditionally. The caller
// has already verified both entities exist; no check that the assignment
// currently matches the given course is made.
func (m *RelationshipManager) Deassign(ctx context.Context, lecturer *models.Lecturer) error {
	if err := m.lecturers.SetCourse(ctx, lecturer.ID, nil); err != nil {
		return fmt.Errorf("error deassigning lecturer %s: %w", lecturer.LecturerID, err)
	}
	return nil
}

// CascadeCourseDelete repairs every relationship touching a course before
// the course row is deleted: each enrolled student loses the course from its
// set, and an assigned lecturer has its assignment cleared.
func (m *RelationshipManager) CascadeCourseDelete(ctx context.Context, course *models.Course) error {
	students, err := m.courses.GetStudents(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error listing students enrolled in course %s: %w", course.Code, err)
	}

	for _, student := range students {
		if err := m.students.RemoveCourse(ctx, student.ID, course.ID); err != nil {
			return fmt.Errorf("error removing course %s from student %s: %w", course.Code, student.StudentID, err)
		}
	}

	lecturer, err := m.lecturers.GetByCourseID(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error checking course assignment: %w", err)
	}

	if lecturer != nil {
		if err := m.lecturers.SetCourse(ctx, lecturer.ID, nil); err != nil {
			return fmt.Errorf("error clearing assignment of lecturer %s: %w", lecturer.LecturerID, err)
		}
	}

	return nil
}

// CascadeStudentDelete clears a student's enrollment set before the student
// row is deleted. Ownership is student-side, so this removes the student
// from every course's derived view in one repair.
func (m *RelationshipManager) CascadeStudentDelete(ctx context.Context, student *models.Student) error {
	if err := m.students.RemoveAllCourses(ctx, student.ID); err != nil {
		return fmt.Errorf("error clearing enrollments of student %s: %w", student.StudentID, err)
	}
	return nil
}

// CascadeLecturerDelete clears a lecturer's assignment before the lecturer
// row is deleted, so the course never transiently references a missing row.
func (m *RelationshipManager) CascadeLecturerDelete(ctx context.Context, lecturer *models.Lecturer) error {
	if lecturer.CourseID == nil {
		return nil
	}
	if err := m.lecturers.SetCourse(ctx, lecturer.ID, nil); err != nil {
		return fmt.Errorf("error clearing assignment of lecturer %s: %w", lecturer.LecturerID, err)
	}
	return nil
}

// LoadCourseRelations populates a course's derived student set and its
// assigned lecturer.
func (m *RelationshipManager) LoadCourseRelations(ctx context.Context, course *models.Course) error {
	students, err := m.courses.GetStudents(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error loading students of course %s: %w", course.Code, err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	course.Students = students

	lecturer, err := m.lecturers.GetByCourseID(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error loading lecturer of course %s: %w", course.Code, err)
	}
	course.Lecturer = lecturer

	return nil
}

// LoadStudentRelations populates a student's enrollment set.
func (m *RelationshipManager) LoadStudentRelations(ctx context.Context, student *models.Student) error {
	courses, err := m.students.GetCourses(ctx, student.ID)
	if err != nil {
		return fmt.Errorf("error loading courses of student %s: %w", student.StudentID, err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	student.Courses = courses
	return nil
}

// LoadLecturerRelations resolves a lecturer's assignment to the course it
// points at.
func (m *RelationshipManager) LoadLecturerRelations(ctx context.Context, lecturer *models.Lecturer) error {
	if lecturer.CourseID == nil {
		lecturer.Course = nil
		return nil
	}

	course, err := m.courses.GetByID(ctx, *lecturer.CourseID)
	if err != nil {
		return fmt.Errorf("error loading course of lecturer %s: %w", lecturer.LecturerID, err)
	}
	lecturer.Course = course
	return nil
}
