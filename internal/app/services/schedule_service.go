package services

import (
	"context"
	"errors"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/helpers"
)

// resolveSlot parses the day and times of a schedule into a comparable slot
func resolveSlot(schedule models.Schedule) (models.TimeSlot, error) {
	day, err := models.ParseDay(schedule.DayOfWeek)
	if err != nil {
		return models.TimeSlot{}, apperrors.NewValidationError("%v", err)
	}
	start, err := helpers.ParseClock(schedule.StartTime)
	if err != nil {
		return models.TimeSlot{}, apperrors.NewValidationError("startTime: %v", err)
	}
	end, err := helpers.ParseClock(schedule.EndTime)
	if err != nil {
		return models.TimeSlot{}, apperrors.NewValidationError("endTime: %v", err)
	}
	if end <= start {
		return models.TimeSlot{}, apperrors.NewValidationError("endTime %s must be after startTime %s", schedule.EndTime, schedule.StartTime)
	}
	return models.TimeSlot{Room: schedule.Room, Day: day, Start: start, End: end}, nil
}

// findConflict returns the first existing schedule whose slot overlaps candidate
func findConflict(existing []models.Schedule, candidate models.TimeSlot) (models.Schedule, models.TimeSlot, bool, error) {
	for _, other := range existing {
		slot, err := resolveSlot(other)
		if err != nil {
			return models.Schedule{}, models.TimeSlot{}, false, err
		}
		if slot.SameRoomAndDay(candidate) && helpers.Overlaps(slot.Start, slot.End, candidate.Start, candidate.End) {
			return other, slot, true, nil
		}
	}
	return models.Schedule{}, models.TimeSlot{}, false, nil
}

// AddSchedule creates a weekly slot for a course.
// Checks run in order: course exists, ID unused, times valid, no overlap in the same room and day.
func (s *catalogServiceImpl) AddSchedule(ctx context.Context, schedule models.Schedule) (string, error) {
	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if _, ok := tx.Course(schedule.CourseID); !ok {
			return apperrors.NewNotFoundError(MsgCourseNotFound)
		}
		if _, ok := tx.Schedule(schedule.ID); ok {
			return apperrors.NewAlreadyExistsError(MsgScheduleAlreadyExists)
		}

		slot, err := resolveSlot(schedule)
		if err != nil {
			return err
		}

		other, otherSlot, conflict, err := findConflict(tx.Schedules(), slot)
		if err != nil {
			return err
		}
		if conflict {
			return apperrors.NewConflictError(MsgScheduleConflict).WithDetails(map[string]interface{}{
				"conflictingScheduleId": other.ID,
				"room":                  other.Room,
				"dayOfWeek":             other.DayOfWeek,
				"startTime":             helpers.FormatClock(otherSlot.Start),
				"endTime":               helpers.FormatClock(otherSlot.End),
			})
		}

		if err := tx.PutSchedule(schedule); err != nil {
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
	return MsgScheduleAdded, nil
}

// GetSchedules lists the schedules of a course ordered by ID
func (s *catalogServiceImpl) GetSchedules(ctx context.Context, courseID int64) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.repo.View(ctx, func(tx repositories.CatalogReader) error {
		schedules = tx.SchedulesForCourse(courseID)
		return nil
	})
	return schedules, err
}

// DeleteSchedule removes a single schedule
func (s *catalogServiceImpl) DeleteSchedule(ctx context.Context, scheduleID int64) (string, error) {
	err := s.repo.Update(ctx, func(tx repositories.CatalogTx) error {
		if !tx.DeleteSchedule(scheduleID) {
			return apperrors.NewNotFoundError(MsgScheduleNotFound)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgScheduleDeleted, nil
}
