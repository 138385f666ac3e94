package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecatalog/internal/app/models"
)

func seeded(t *testing.T) *MemoryCatalogRepository {
	t.Helper()
	repo := NewMemoryCatalogRepository()
	err := repo.Update(context.Background(), func(tx CatalogTx) error {
		tx.PutCourse(models.Course{ID: 1, Code: "CS101"})
		tx.PutCourse(models.Course{ID: 2, Code: "CS201"})
		if err := tx.AddEnrollment(1, 500); err != nil {
			return err
		}
		if err := tx.AddEnrollment(2, 500); err != nil {
			return err
		}
		if err := tx.PutSchedule(models.Schedule{ID: 10, CourseID: 1, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00", Room: "A101"}); err != nil {
			return err
		}
		return tx.PutSchedule(models.Schedule{ID: 11, CourseID: 2, DayOfWeek: "MONDAY", StartTime: "10:00", EndTime: "11:00", Room: "A101"})
	})
	require.NoError(t, err)
	return repo
}

func TestDeleteCourse_Cascades(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	var deleted bool
	require.NoError(t, repo.Update(ctx, func(tx CatalogTx) error {
		deleted = tx.DeleteCourse(1)
		return nil
	}))
	assert.True(t, deleted)

	require.NoError(t, repo.View(ctx, func(tx CatalogReader) error {
		_, ok := tx.Course(1)
		assert.False(t, ok)
		assert.Empty(t, tx.Enrolled(1))
		assert.Empty(t, tx.SchedulesForCourse(1))
		_, ok = tx.Schedule(10)
		assert.False(t, ok)

		// the other course is untouched
		assert.Equal(t, []int64{500}, tx.Enrolled(2))
		assert.Len(t, tx.Schedules(), 1)
		assert.Equal(t, []int64{2}, courseIDs(tx.CoursesForStudent(500)))
		return nil
	}))
}

func TestDeleteCourse_Missing(t *testing.T) {
	repo := seeded(t)

	require.NoError(t, repo.Update(context.Background(), func(tx CatalogTx) error {
		assert.False(t, tx.DeleteCourse(99))
		return nil
	}))
}

func TestAddEnrollment(t *testing.T) {
	repo := seeded(t)

	require.NoError(t, repo.Update(context.Background(), func(tx CatalogTx) error {
		assert.True(t, tx.IsEnrolled(1, 500))
		require.NoError(t, tx.AddEnrollment(1, 500), "re-adding is a no-op")
		require.NoError(t, tx.AddEnrollment(1, 501))
		assert.True(t, tx.IsEnrolled(1, 501))
		assert.False(t, tx.IsEnrolled(2, 501))

		err := tx.AddEnrollment(42, 1)
		assert.True(t, errors.Is(err, ErrCourseMissing))

		assert.Equal(t, []int64{500, 501}, tx.Enrolled(1))
		return nil
	}))
}

func TestRemoveEnrollment(t *testing.T) {
	repo := seeded(t)

	require.NoError(t, repo.Update(context.Background(), func(tx CatalogTx) error {
		assert.True(t, tx.RemoveEnrollment(1, 500))
		assert.False(t, tx.RemoveEnrollment(1, 500))
		assert.False(t, tx.RemoveEnrollment(77, 500))
		assert.Empty(t, tx.Enrolled(1))
		return nil
	}))
}

func TestPutSchedule_RequiresCourse(t *testing.T) {
	repo := seeded(t)

	err := repo.Update(context.Background(), func(tx CatalogTx) error {
		return tx.PutSchedule(models.Schedule{ID: 12, CourseID: 404})
	})
	assert.True(t, errors.Is(err, ErrCourseMissing))
}

func TestDeleteSchedule(t *testing.T) {
	repo := seeded(t)

	require.NoError(t, repo.Update(context.Background(), func(tx CatalogTx) error {
		assert.True(t, tx.DeleteSchedule(10))
		assert.False(t, tx.DeleteSchedule(10))
		assert.Empty(t, tx.SchedulesForCourse(1))
		return nil
	}))
}

func TestReturnedValuesAreCopies(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	teacher := int64(1001)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, func(tx CatalogTx) error {
		tx.PutCourse(models.Course{ID: 1, Name: "Analyse", TeacherID: &teacher})
		return nil
	}))
	teacher = 7

	require.NoError(t, repo.View(ctx, func(tx CatalogReader) error {
		c, _ := tx.Course(1)
		assert.Equal(t, int64(1001), *c.TeacherID)
		*c.TeacherID = 8
		c.Name = "changed"

		again, _ := tx.Course(1)
		assert.Equal(t, int64(1001), *again.TeacherID)
		assert.Equal(t, "Analyse", again.Name)
		return nil
	}))
}

func TestCanceledContext(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := repo.Update(ctx, func(tx CatalogTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestConcurrentReadersNeverSeePartialCascade(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, func(tx CatalogTx) error {
		for i := int64(1); i <= 50; i++ {
			tx.PutCourse(models.Course{ID: i})
			if err := tx.AddEnrollment(i, 1); err != nil {
				return err
			}
			if err := tx.PutSchedule(models.Schedule{ID: i, CourseID: i}); err != nil {
				return err
			}
		}
		return nil
	}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= 50; i++ {
			_ = repo.Update(ctx, func(tx CatalogTx) error {
				tx.DeleteCourse(i)
				return nil
			})
		}
	}()
	go func() {
		defer wg.Done()
		for n := 0; n < 200; n++ {
			_ = repo.View(ctx, func(tx CatalogReader) error {
				for _, s := range tx.Schedules() {
					_, ok := tx.Course(s.CourseID)
					assert.True(t, ok, "schedule %d outlived its course", s.ID)
				}
				for _, c := range tx.CoursesForStudent(1) {
					_, ok := tx.Course(c.ID)
					assert.True(t, ok)
				}
				return nil
			})
		}
	}()
	wg.Wait()
}

func courseIDs(courses []models.Course) []int64 {
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}
