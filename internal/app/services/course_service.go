package services

import (
	"context"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// validateCourse checks the numeric invariants of a course payload
func validateCourse(course models.Course) error {
	if course.Credits < 0 {
		return apperrors.NewValidationError("credits must be zero or more, got %d", course.Credits)
	}
	if course.Hours < 0 {
		return apperrors.NewValidationError("hours must be zero or more, got %d", course.Hours)
	}
	return nil
}

// GetCourse retrieves a course by ID
func (s *catalogServiceImpl) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		c, ok := tx.Course(id)
		if !ok {
			return apperrors.NewNotFoundError(MsgCourseNotFound)
		}
		course = c
		return nil
	})
	return course, err
}

// ListCourses retrieves all courses ordered by ID
func (s *catalogServiceImpl) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		courses = tx.Courses()
		return nil
	})
	return courses, err
}

// AddCourse stores a new course; the ID must be unused
func (s *catalogServiceImpl) AddCourse(ctx context.Context, course models.Course) (string, error) {
	if err := validateCourse(course); err != nil {
		return "", err
	}

	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if _, exists := tx.Course(course.ID); exists {
			return apperrors.NewAlreadyExistsError(MsgCourseAlreadyExists)
		}
		tx.PutCourse(course)
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgCourseCreated, nil
}

// UpdateCourse overwrites every field of an existing course.
// A missing course is reported before any payload validation.
func (s *catalogServiceImpl) UpdateCourse(ctx context.Context, id int64, course models.Course) (string, error) {
	course.ID = id

	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if _, exists := tx.Course(id); !exists {
			return apperrors.NewNotFoundError(MsgCourseNotFound)
		}
		if err := validateCourse(course); err != nil {
			return err
		}
		tx.PutCourse(course)
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgCourseUpdated, nil
}

// DeleteCourse removes a course together with its enrollments and schedules
func (s *catalogServiceImpl) DeleteCourse(ctx context.Context, id int64) (string, error) {
	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if !tx.DeleteCourse(id) {
			return apperrors.NewNotFoundError(MsgCourseNotFound)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgCourseDeleted, nil
}

// FilterCourses returns the courses matching every non-empty filter field
func (s *catalogServiceImpl) FilterCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	out := []models.Course{}
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		for _, c := range tx.Courses() {
			if filter.Matches(c) {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, err
}
