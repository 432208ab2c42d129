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

// LecturerRepository handles database operations for lecturers and their
// course assignment.
type LecturerRepository struct {
	db *pgxpool.Pool
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(db *pgxpool.Pool) *LecturerRepository {
	return &LecturerRepository{
		db: db,
	}
}

// GetByLecturerID retrieves a lecturer by its external lecturer id. Returns
// nil without error when no lecturer with that id exists.
func (r *LecturerRepository) GetByLecturerID(ctx context.Context, lecturerID string) (*models.Lecturer, error) {
	query := `
		SELECT id, lecturer_id, first_name, last_name, course_id
		FROM lecturers
		WHERE lecturer_id = $1
	`

	var lecturer models.Lecturer
	err := r.db.QueryRow(ctx, query, lecturerID).Scan(
		&lecturer.ID,
		&lecturer.LecturerID,
		&lecturer.FirstName,
		&lecturer.LastName,
		&lecturer.CourseID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}

	return &lecturer, nil
}

// GetAll retrieves all lecturers
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	query := `
		SELECT id, lecturer_id, first_name, last_name, course_id
		FROM lecturers
		ORDER BY lecturer_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lecturers []*models.Lecturer
	for rows.Next() {
		var lecturer models.Lecturer
		if err := rows.Scan(
			&lecturer.ID,
			&lecturer.LecturerID,
			&lecturer.FirstName,
			&lecturer.LastName,
			&lecturer.CourseID,
		); err != nil {
			return nil, err
		}
		lecturers = append(lecturers, &lecturer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lecturers, nil
}

// GetByCourseID retrieves the lecturer currently assigned to a course.
// Returns nil without error when the course has no lecturer.
func (r *LecturerRepository) GetByCourseID(ctx context.Context, courseID int64) (*models.Lecturer, error) {
	query := `
		SELECT id, lecturer_id, first_name, last_name, course_id
		FROM lecturers
		WHERE course_id = $1
	`

	var lecturer models.Lecturer
	err := r.db.QueryRow(ctx, query, courseID).Scan(
		&lecturer.ID,
		&lecturer.LecturerID,
		&lecturer.FirstName,
		&lecturer.LastName,
		&lecturer.CourseID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving lecturer by course: %w", err)
	}

	return &lecturer, nil
}

// Create creates a new lecturer, assigning its database id
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) error {
	query := `
		INSERT INTO lecturers (lecturer_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, lecturer.LecturerID, lecturer.FirstName, lecturer.LastName).Scan(&lecturer.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lecturers_lecturer_id_key") {
			return ErrLecturerAlreadyExists
		}
		return err
	}

	return nil
}

// Update overwrites a lecturer's descriptive attributes. The assignment is
// mutated only through SetCourse.
func (r *LecturerRepository) Update(ctx context.Context, lecturer *models.Lecturer) error {
	query := `
		UPDATE lecturers
		SET first_name = $1, last_name = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, lecturer.FirstName, lecturer.LastName, lecturer.ID)
	if err != nil {
		return fmt.Errorf("error updating lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrLecturerNotFound
	}

	return nil
}

// Delete deletes a lecturer row
func (r *LecturerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrLecturerNotFound
	}

	return nil
}

// SetCourse writes a lecturer's assignment, nil to clear it. The unique
// constraint on course_id is the store-level guard against two lecturers
// racing for the same course.
func (r *LecturerRepository) SetCourse(ctx context.Context, lecturerID int64, courseID *int64) error {
	query := `
		UPDATE lecturers
		SET course_id = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, courseID, lecturerID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lecturers_course_id_key") {
			return ErrCourseAlreadyAssigned
		}
		return fmt.Errorf("error setting lecturer assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrLecturerNotFound
	}

	return nil
}
