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

// LecturerService defines the CRUD operations on lecturers
type LecturerService interface {
	GetLecturer(ctx context.Context, lecturerID string) (*models.Lecturer, error)
	GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error)
	CreateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error)
	UpdateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error)
	DeleteLecturer(ctx context.Context, lecturerID string) (bool, error)
}

// lecturerServiceImpl implements the LecturerService interface
type lecturerServiceImpl struct {
	lecturers LecturerStore
	rel       *RelationshipManager
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(lecturers LecturerStore, rel *RelationshipManager) LecturerService {
	return &lecturerServiceImpl{
		lecturers: lecturers,
		rel:       rel,
	}
}

// validateLecturer validates lecturer data before store operations
func validateLecturer(lecturer *models.Lecturer) error {
	if lecturer == nil {
		return fmt.Errorf("%w: lecturer is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(lecturer.LecturerID) == "" {
		return fmt.Errorf("%w: lecturer id cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetLecturer retrieves a lecturer by lecturer id with its assignment loaded
func (s *lecturerServiceImpl) GetLecturer(ctx context.Context, lecturerID string) (*models.Lecturer, error) {
	lecturer, err := s.lecturers.GetByLecturerID(ctx, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}

	if lecturer == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Cannot find Lecturer with id %s", lecturerID))
	}

	if err := s.rel.LoadLecturerRelations(ctx, lecturer); err != nil {
		return nil, err
	}

	return lecturer, nil
}

// GetAllLecturers retrieves all lecturers with their assignments loaded
func (s *lecturerServiceImpl) GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	logger.Debug().Msg("Attempting to get all lecturers")

	lecturers, err := s.lecturers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}

	for _, lecturer := range lecturers {
		if err := s.rel.LoadLecturerRelations(ctx, lecturer); err != nil {
			return nil, err
		}
	}

	return lecturers, nil
}

// CreateLecturer creates a new lecturer with no assignment
func (s *lecturerServiceImpl) CreateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	if err := validateLecturer(lecturer); err != nil {
		return nil, err
	}

	logger.Info().Str("lecturerId", lecturer.LecturerID).Msg("Attempting to create lecturer")

	existing, err := s.lecturers.GetByLecturerID(ctx, lecturer.LecturerID)
	if err != nil {
		return nil, fmt.Errorf("error checking lecturer existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("A Lecturer with Lecturer id: %s already exists", lecturer.LecturerID))
	}

	created := &models.Lecturer{
		LecturerID: lecturer.LecturerID,
		FirstName:  lecturer.FirstName,
		LastName:   lecturer.LastName,
	}

	if err := s.lecturers.Create(ctx, created); err != nil {
		if errors.Is(err, repositories.ErrLecturerAlreadyExists) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("A Lecturer with Lecturer id: %s already exists", lecturer.LecturerID))
		}
		return nil, fmt.Errorf("error creating lecturer: %w", err)
	}

	return created, nil
}

// UpdateLecturer overwrites a lecturer's descriptive attributes. The
// lecturer id identifies the target and is never changed; the assignment is
// mutated only through the assignment operations.
func (s *lecturerServiceImpl) UpdateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	if err := validateLecturer(lecturer); err != nil {
		return nil, err
	}

	logger.Info().Str("lecturerId", lecturer.LecturerID).Msg("Attempting to update lecturer")

	existing, err := s.lecturers.GetByLecturerID(ctx, lecturer.LecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("A Lecturer with Lecturer id: %s does not exist. Cannot update", lecturer.LecturerID))
	}

	existing.FirstName = lecturer.FirstName
	existing.LastName = lecturer.LastName

	if err := s.lecturers.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("error updating lecturer: %w", err)
	}

	if err := s.rel.LoadLecturerRelations(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteLecturer removes a lecturer after clearing its assignment, so the
// assigned course is left without a dangling back-reference.
func (s *lecturerServiceImpl) DeleteLecturer(ctx context.Context, lecturerID string) (bool, error) {
	logger.Info().Str("lecturerId", lecturerID).Msg("Attempting to delete lecturer")

	lecturer, err := s.lecturers.GetByLecturerID(ctx, lecturerID)
	if err != nil {
		return false, fmt.Errorf("error retrieving lecturer: %w", err)
	}
	if lecturer == nil {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("A Lecturer with Lecturer id: %s does not exist. Cannot delete", lecturerID))
	}

	if err := s.rel.CascadeLecturerDelete(ctx, lecturer); err != nil {
		logger.Error().Err(err).Str("lecturerId", lecturerID).Msg("Cascade repair failed during lecturer delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Lecturer with Lecturer id %s", lecturerID))
	}

	if err := s.lecturers.Delete(ctx, lecturer.ID); err != nil {
		logger.Error().Err(err).Str("lecturerId", lecturerID).Msg("Store failure during lecturer delete")
		return false, apperrors.NewInternalError(fmt.Sprintf("Unexpected error encountered deleting Lecturer with Lecturer id %s", lecturerID))
	}

	return true, nil
}
