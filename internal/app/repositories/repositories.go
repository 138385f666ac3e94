package repositories

import (
	"context"
	"errors"

	"github.com/yigit/coursecatalog/internal/app/models"
)

// Repository error types
var (
	// ErrCourseMissing is returned when a dependent record references an absent course.
	ErrCourseMissing = errors.New("referenced course does not exist")
)

// CatalogReader exposes read access to the catalog collections inside a transaction.
// Every returned value is a copy.
type CatalogReader interface {
	Course(id int64) (models.Course, bool)
	Courses() []models.Course
	Enrolled(courseID int64) []int64
	IsEnrolled(courseID, studentID int64) bool
	CoursesForStudent(studentID int64) []models.Course
	Schedule(id int64) (models.Schedule, bool)
	Schedules() []models.Schedule
	SchedulesForCourse(courseID int64) []models.Schedule
}

// CatalogTx exposes read and write access inside an Update transaction.
type CatalogTx interface {
	CatalogReader

	// PutCourse inserts or fully replaces a course.
	PutCourse(course models.Course)
	// DeleteCourse removes a course with its enrollments and schedules.
	DeleteCourse(id int64) bool
	// AddEnrollment is idempotent; it fails only for an unknown course.
	AddEnrollment(courseID, studentID int64) error
	RemoveEnrollment(courseID, studentID int64) bool
	PutSchedule(schedule models.Schedule) error
	DeleteSchedule(id int64) bool
}

// CatalogRepository owns the course, enrollment and schedule collections.
// View runs fn with shared read access; Update runs fn with exclusive access,
// so a check-then-write sequence inside fn is atomic.
type CatalogRepository interface {
	View(ctx context.Context, fn func(tx CatalogReader) error) error
	Update(ctx context.Context, fn func(tx CatalogTx) error) error
}

// Repositories holds all the repository instances
type Repositories struct {
	CatalogRepository CatalogRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		CatalogRepository: NewMemoryCatalogRepository(),
	}
}
