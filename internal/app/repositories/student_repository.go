package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students and the
// student-owned enrollment rows.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByStudentID retrieves a student by its external student id. Returns nil
// without error when no student with that id exists.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT id, student_id, first_name, last_name
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&student.ID,
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, student_id, first_name, last_name
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentID,
			&student.FirstName,
			&student.LastName,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create creates a new student, assigning its database id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, student.StudentID, student.FirstName, student.LastName).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return ErrStudentAlreadyExists
		}
		return err
	}

	return nil
}

// Update overwrites a student's descriptive attributes
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, student.FirstName, student.LastName, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student row
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// GetCourses retrieves the courses a student is enrolled in
func (r *StudentRepository) GetCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.course_code, c.course_name, c.course_description
		FROM courses c
		JOIN student_course_registrations r ON r.course_id = c.id
		WHERE r.student_id = $1
		ORDER BY c.course_code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Description,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// AddCourse adds a course to a student's enrollment set. Adding an already
// present course is a no-op, which makes enrollment idempotent.
func (r *StudentRepository) AddCourse(ctx context.Context, studentID, courseID int64) error {
	query := `
		INSERT INTO student_course_registrations (student_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, studentID, courseID); err != nil {
		return fmt.Errorf("error adding course registration: %w", err)
	}

	return nil
}

// RemoveCourse removes a course from a student's enrollment set. Removing an
// absent course is a no-op.
func (r *StudentRepository) RemoveCourse(ctx context.Context, studentID, courseID int64) error {
	query := `
		DELETE FROM student_course_registrations
		WHERE student_id = $1 AND course_id = $2
	`

	if _, err := r.db.Exec(ctx, query, studentID, courseID); err != nil {
		return fmt.Errorf("error removing course registration: %w", err)
	}

	return nil
}

// RemoveAllCourses clears a student's entire enrollment set
func (r *StudentRepository) RemoveAllCourses(ctx context.Context, studentID int64) error {
	query := `
		DELETE FROM student_course_registrations
		WHERE student_id = $1
	`

	if _, err := r.db.Exec(ctx, query, studentID); err != nil {
		return fmt.Errorf("error clearing course registrations: %w", err)
	}

	return nil
}
