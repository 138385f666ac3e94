package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

// DefaultCourses returns the example courses present at every startup.
func DefaultCourses() []models.Course {
	return []models.Course{
		{
			ID:          1,
			Code:        "CS101",
			Name:        "Mathématiques",
			Description: "Analyse 1",
			Credits:     6,
			Hours:       60,
			Filiere:     "SCI",
			Niveau:      "L1",
			TeacherID:   int64Ptr(1001),
			Room:        "A101",
		},
		{
			ID:          2,
			Code:        "CS201",
			Name:        "Programmation Java",
			Description: "POO et Collections",
			Credits:     5,
			Hours:       45,
			Filiere:     "INFO",
			Niveau:      "L2",
			TeacherID:   int64Ptr(1002),
			Room:        "B202",
		},
	}
}

// CreateDefaultData adds the default courses, skipping any that already exist.
func CreateDefaultData(ctx context.Context, catalog services.CatalogService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default courses...")
	var finalErr error // To collect potential errors without stopping the process

	for _, course := range DefaultCourses() {
		_, err := catalog.AddCourse(ctx, course)
		switch {
		case err == nil:
			lgr.Info().Int64("courseID", course.ID).Str("code", course.Code).Msg("Default course created")
		case apperrors.Is(err, apperrors.ErrAlreadyExists):
			lgr.Debug().Int64("courseID", course.ID).Msg("Default course already exists, skipping")
		default:
			lgr.Error().Err(err).Int64("courseID", course.ID).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
