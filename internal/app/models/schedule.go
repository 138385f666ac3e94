package models

import "strings"

// Schedule represents a weekly recurring time slot for a course.
type Schedule struct {
	ID        int64  `json:"id"`
	CourseID  int64  `json:"courseId"`
	DayOfWeek string `json:"dayOfWeek"` // e.g. MONDAY
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Room      string `json:"room"`
}

// TimeSlot is a schedule resolved to comparable values.
// Start and End are minutes since midnight, End exclusive.
type TimeSlot struct {
	Room  string
	Day   string
	Start int
	End   int
}

// SameRoomAndDay reports whether both slots use the same room on the same day.
// Room and day names compare case-insensitively.
func (s TimeSlot) SameRoomAndDay(other TimeSlot) bool {
	return strings.EqualFold(s.Day, other.Day) && strings.EqualFold(s.Room, other.Room)
}
