package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/coursecatalog/internal/app/models"
)

type idSet map[int64]struct{}

func (s idSet) sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MemoryCatalogRepository keeps the catalog in process memory behind one RWMutex.
type MemoryCatalogRepository struct {
	mu sync.RWMutex

	courses     map[int64]models.Course
	enrollments map[int64]idSet // course id -> student ids
	schedules   map[int64]models.Schedule
	byCourse    map[int64]idSet // course id -> schedule ids
}

// NewMemoryCatalogRepository creates an empty in-memory catalog
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		courses:     make(map[int64]models.Course),
		enrollments: make(map[int64]idSet),
		schedules:   make(map[int64]models.Schedule),
		byCourse:    make(map[int64]idSet),
	}
}

// View runs fn under the read lock
func (r *MemoryCatalogRepository) View(ctx context.Context, fn func(tx CatalogReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(memoryTx{r})
}

// Update runs fn under the write lock.
// Writes made by fn before it returns an error are kept, so fn must validate first.
func (r *MemoryCatalogRepository) Update(ctx context.Context, fn func(tx CatalogTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(memoryTx{r})
}

// memoryTx is only valid while the repository lock is held.
type memoryTx struct {
	r *MemoryCatalogRepository
}

func (tx memoryTx) Course(id int64) (models.Course, bool) {
	c, ok := tx.r.courses[id]
	if !ok {
		return models.Course{}, false
	}
	return c.Clone(), true
}

func (tx memoryTx) Courses() []models.Course {
	out := make([]models.Course, 0, len(tx.r.courses))
	for _, c := range tx.r.courses {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (tx memoryTx) Enrolled(courseID int64) []int64 {
	set, ok := tx.r.enrollments[courseID]
	if !ok {
		return []int64{}
	}
	return set.sorted()
}

func (tx memoryTx) IsEnrolled(courseID, studentID int64) bool {
	_, ok := tx.r.enrollments[courseID][studentID]
	return ok
}

func (tx memoryTx) CoursesForStudent(studentID int64) []models.Course {
	out := []models.Course{}
	for courseID, students := range tx.r.enrollments {
		if _, ok := students[studentID]; ok {
			out = append(out, tx.r.courses[courseID].Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (tx memoryTx) Schedule(id int64) (models.Schedule, bool) {
	s, ok := tx.r.schedules[id]
	return s, ok
}

func (tx memoryTx) Schedules() []models.Schedule {
	out := make([]models.Schedule, 0, len(tx.r.schedules))
	for _, s := range tx.r.schedules {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (tx memoryTx) SchedulesForCourse(courseID int64) []models.Schedule {
	ids := tx.r.byCourse[courseID].sorted()
	out := make([]models.Schedule, 0, len(ids))
	for _, id := range ids {
		out = append(out, tx.r.schedules[id])
	}
	return out
}

func (tx memoryTx) PutCourse(course models.Course) {
	tx.r.courses[course.ID] = course.Clone()
}

func (tx memoryTx) DeleteCourse(id int64) bool {
	if _, ok := tx.r.courses[id]; !ok {
		return false
	}
	delete(tx.r.courses, id)
	delete(tx.r.enrollments, id)
	for scheduleID := range tx.r.byCourse[id] {
		delete(tx.r.schedules, scheduleID)
	}
	delete(tx.r.byCourse, id)
	return true
}

func (tx memoryTx) AddEnrollment(courseID, studentID int64) error {
	if _, ok := tx.r.courses[courseID]; !ok {
		return ErrCourseMissing
	}
	set, ok := tx.r.enrollments[courseID]
	if !ok {
		set = make(idSet)
		tx.r.enrollments[courseID] = set
	}
	set[studentID] = struct{}{}
	return nil
}

func (tx memoryTx) RemoveEnrollment(courseID, studentID int64) bool {
	set, ok := tx.r.enrollments[courseID]
	if !ok {
		return false
	}
	if _, enrolled := set[studentID]; !enrolled {
		return false
	}
	delete(set, studentID)
	if len(set) == 0 {
		delete(tx.r.enrollments, courseID)
	}
	return true
}

func (tx memoryTx) PutSchedule(schedule models.Schedule) error {
	if _, ok := tx.r.courses[schedule.CourseID]; !ok {
		return ErrCourseMissing
	}
	if prev, ok := tx.r.schedules[schedule.ID]; ok {
		delete(tx.r.byCourse[prev.CourseID], prev.ID)
	}
	tx.r.schedules[schedule.ID] = schedule
	set, ok := tx.r.byCourse[schedule.CourseID]
	if !ok {
		set = make(idSet)
		tx.r.byCourse[schedule.CourseID] = set
	}
	set[schedule.ID] = struct{}{}
	return nil
}

func (tx memoryTx) DeleteSchedule(id int64) bool {
	s, ok := tx.r.schedules[id]
	if !ok {
		return false
	}
	delete(tx.r.schedules, id)
	if set, ok := tx.r.byCourse[s.CourseID]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(tx.r.byCourse, s.CourseID)
		}
	}
	return true
}
