package services

import (
	"context"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/repositories"
)

// Status messages returned to callers. These strings are part of the public contract.
const (
	MsgCourseCreated       = "Course created successfully!"
	MsgCourseAlreadyExists = "Course already exists!"
	MsgCourseUpdated       = "Course updated"
	MsgCourseDeleted       = "Course deleted"
	MsgCourseNotFound      = "Course not found"

	MsgEnrolled        = "Enrolled"
	MsgAlreadyEnrolled = "Student already enrolled"
	MsgUnenrolled      = "Unenrolled"
	MsgNotEnrolled     = "Not enrolled"

	MsgScheduleAdded         = "Schedule added"
	MsgScheduleAlreadyExists = "Schedule already exists"
	MsgScheduleConflict      = "Schedule conflict detected"
	MsgScheduleDeleted       = "Schedule deleted"
	MsgScheduleNotFound      = "Schedule not found"
)

// CatalogService manages courses, enrollments and schedules.
// Mutating operations return the success status message; failures are
// *apperrors.CatalogError values carrying the failure message.
type CatalogService interface {
	GetCourse(ctx context.Context, id int64) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	AddCourse(ctx context.Context, course models.Course) (string, error)
	UpdateCourse(ctx context.Context, id int64, course models.Course) (string, error)
	DeleteCourse(ctx context.Context, id int64) (string, error)
	FilterCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)

	EnrollStudent(ctx context.Context, courseID, studentID int64) (string, error)
	GetEnrolledStudents(ctx context.Context, courseID int64) ([]int64, error)
	UnenrollStudent(ctx context.Context, courseID, studentID int64) (string, error)
	GetStudentCourses(ctx context.Context, studentID int64) ([]models.Course, error)

	AddSchedule(ctx context.Context, schedule models.Schedule) (string, error)
	GetSchedules(ctx context.Context, courseID int64) ([]models.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID int64) (string, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(repo repositories.CatalogRepository) CatalogService {
	return &catalogServiceImpl{
		repo: repo,
	}
}
