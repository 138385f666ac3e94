package services

import (
	"context"
	"errors"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// EnrollStudent adds a student to a course. Student IDs are not validated.
func (s *catalogServiceImpl) EnrollStudent(ctx context.Context, courseID, studentID int64) (string, error) {
	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if _, ok := tx.Course(courseID); !ok {
			return apperrors.NewNotFoundError(MsgCourseNotFound)
		}
		if tx.IsEnrolled(courseID, studentID) {
			return apperrors.New(apperrors.KindAlreadyEnrolled, MsgAlreadyEnrolled)
		}
		if err := tx.AddEnrollment(courseID, studentID); err != nil {
			if errors.Is(err, repositories.ErrCourseMissing) {
				return apperrors.NewNotFoundError(MsgCourseNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgEnrolled, nil
}

// GetEnrolledStudents lists the students of a course; unknown courses yield an empty list
func (s *catalogServiceImpl) GetEnrolledStudents(ctx context.Context, courseID int64) ([]int64, error) {
	var students []int64
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		students = tx.Enrolled(courseID)
		return nil
	})
	return students, err
}

// UnenrollStudent removes a student from a course
func (s *catalogServiceImpl) UnenrollStudent(ctx context.Context, courseID, studentID int64) (string, error) {
	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if !tx.RemoveEnrollment(courseID, studentID) {
			return apperrors.New(apperrors.KindNotEnrolled, MsgNotEnrolled)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgUnenrolled, nil
}

// GetStudentCourses lists every course the student is enrolled in
func (s *catalogServiceImpl) GetStudentCourses(ctx context.Context, studentID int64) ([]models.Course, error) {
	var courses []models.Course
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		courses = tx.CoursesForStudent(studentID)
		return nil
	})
	return courses, err
}
