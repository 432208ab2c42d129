package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/jkcodespace/academics/internal/app/models"
	appRepos "github.com/jkcodespace/academics/internal/app/repositories"
)

// CreateDefaultData populates a handful of demo records so a fresh instance
// has something to serve. Existing records are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)
	lecturerRepo := appRepos.NewLecturerRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo data (Courses/Students/Lecturers)...")
	var finalErr error

	courses := []*appModels.Course{
		{Code: "CS101", Name: "Introduction to Computer Science", Description: "Foundations of computing and programming"},
		{Code: "MA201", Name: "Linear Algebra", Description: "Vector spaces, matrices and linear transformations"},
	}
	for _, course := range courses {
		if err := courseRepo.Create(ctx, course); err != nil && !errors.Is(err, appRepos.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("courseCode", course.Code).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	students := []*appModels.Student{
		{StudentID: "S1000001", FirstName: "Ada", LastName: "Lovelace"},
		{StudentID: "S1000002", FirstName: "Alan", LastName: "Turing"},
	}
	for _, student := range students {
		if err := studentRepo.Create(ctx, student); err != nil && !errors.Is(err, appRepos.ErrStudentAlreadyExists) {
			lgr.Error().Err(err).Str("studentId", student.StudentID).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lecturers := []*appModels.Lecturer{
		{LecturerID: "L2000001", FirstName: "Grace", LastName: "Hopper"},
	}
	for _, lecturer := range lecturers {
		if err := lecturerRepo.Create(ctx, lecturer); err != nil && !errors.Is(err, appRepos.ErrLecturerAlreadyExists) {
			lgr.Error().Err(err).Str("lecturerId", lecturer.LecturerID).Msg("Error creating demo lecturer")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Finished creating demo data with errors")
	} else {
		lgr.Info().Msg("Demo data check/creation complete")
	}
	return finalErr
}
