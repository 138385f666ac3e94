package dto

import "github.com/yigit/coursecatalog/internal/app/models"

// CourseRequest carries the mutable fields of a course
type CourseRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits" binding:"min=0"`
	Hours       int    `json:"hours" binding:"min=0"`
	Filiere     string `json:"filiere"`
	Niveau      string `json:"niveau"`
	TeacherID   *int64 `json:"teacherId"`
	Room        string `json:"room"`
}

// ToModel builds a course with the given ID
func (r CourseRequest) ToModel(id int64) models.Course {
	return models.Course{
		ID:          id,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Credits:     r.Credits,
		Hours:       r.Hours,
		Filiere:     r.Filiere,
		Niveau:      r.Niveau,
		TeacherID:   r.TeacherID,
		Room:        r.Room,
	}
}

// CreateCourseRequest is a new course; the client chooses the ID
type CreateCourseRequest struct {
	ID *int64 `json:"id" binding:"required"`
	CourseRequest
}

// EnrollRequest enrolls a student in the course of the URL
type EnrollRequest struct {
	StudentID *int64 `json:"studentId" binding:"required"`
}

// CreateScheduleRequest adds a weekly slot.
// Day and times are checked by the catalog after the course and id checks.
type CreateScheduleRequest struct {
	ID        *int64 `json:"id" binding:"required"`
	CourseID  *int64 `json:"courseId" binding:"required"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
}

// ToModel converts the request into a schedule
func (r CreateScheduleRequest) ToModel() models.Schedule {
	return models.Schedule{
		ID:        *r.ID,
		CourseID:  *r.CourseID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Room:      r.Room,
	}
}

// CourseFilterQuery binds the optional filters of GET /courses
type CourseFilterQuery struct {
	Filiere string `form:"filiere"`
	Niveau  string `form:"niveau"`
	Code    string `form:"code"`
	Name    string `form:"name"`
}

// ToModel converts the query into a course filter
func (q CourseFilterQuery) ToModel() models.CourseFilter {
	return models.CourseFilter{
		Filiere: q.Filiere,
		Niveau:  q.Niveau,
		Code:    q.Code,
		Name:    q.Name,
	}
}
