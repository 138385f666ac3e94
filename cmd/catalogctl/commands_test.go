package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/seed"
)

type harness struct {
	catalog services.CatalogService
	out     *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	catalog := services.NewCatalogService(repositories.NewMemoryCatalogRepository())
	require.NoError(t, seed.CreateDefaultData(context.Background(), catalog, zerolog.Nop()))
	return &harness{catalog: catalog, out: &bytes.Buffer{}}
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	app := newApp(h.out, func(*cli.Context) services.CatalogService { return h.catalog })
	return app.Run(append([]string{"catalogctl"}, args...))
}

func TestCoursesCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("courses"))
	assert.Contains(t, h.out.String(), "2 course(s)")
	assert.Contains(t, h.out.String(), "CS101")
	assert.Contains(t, h.out.String(), "CS201")

	require.NoError(t, h.run("courses", "--filiere", "sci"))
	assert.Contains(t, h.out.String(), "1 course(s)")
	assert.Contains(t, h.out.String(), "CS101")
	assert.NotContains(t, h.out.String(), "CS201")
}

func TestCourseLifecycleCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("add-course", "--id", "5", "--code", "CS501", "--name", "Compilation", "--teacher", "77"))
	assert.Contains(t, h.out.String(), services.MsgCourseCreated)

	require.NoError(t, h.run("course", "5"))
	assert.Contains(t, h.out.String(), "CS501")
	assert.Contains(t, h.out.String(), "77")

	err := h.run("add-course", "--id", "5")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	require.NoError(t, h.run("update-course", "--id", "5", "--code", "CS502", "--name", "Compilation 2", "--credits", "3"))
	assert.Contains(t, h.out.String(), services.MsgCourseUpdated)

	updated, err := h.catalog.GetCourse(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "CS502", updated.Code)
	assert.Equal(t, 3, updated.Credits)
	assert.Nil(t, updated.TeacherID, "unset flags clear their field")

	assert.ErrorIs(t, h.run("update-course", "--id", "404", "--code", "X"), apperrors.ErrNotFound)

	require.NoError(t, h.run("delete-course", "5"))
	assert.Contains(t, h.out.String(), services.MsgCourseDeleted)

	err = h.run("course", "5")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEnrollmentCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("enroll", "1", "300"))
	assert.Contains(t, h.out.String(), services.MsgEnrolled)

	require.NoError(t, h.run("students", "1"))
	assert.Contains(t, h.out.String(), "300")

	require.NoError(t, h.run("student-courses", "300"))
	assert.Contains(t, h.out.String(), "CS101")

	require.NoError(t, h.run("unenroll", "1", "300"))
	assert.Contains(t, h.out.String(), services.MsgUnenrolled)

	assert.ErrorIs(t, h.run("unenroll", "1", "300"), apperrors.ErrNotEnrolled)
}

func TestScheduleCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("add-schedule", "1", "1", "MONDAY", "08:00", "10:00", "A101"))
	assert.Contains(t, h.out.String(), services.MsgScheduleAdded)

	assert.ErrorIs(t, h.run("add-schedule", "2", "2", "monday", "09:00", "11:00", "a101"), apperrors.ErrConflict)

	require.NoError(t, h.run("schedules", "1"))
	assert.Contains(t, h.out.String(), "08:00")

	require.NoError(t, h.run("delete-schedule", "1"))
	assert.Contains(t, h.out.String(), services.MsgScheduleDeleted)
}

func TestArgumentErrors(t *testing.T) {
	h := newHarness(t)

	assert.EqualError(t, h.run("course"), "missing <id> argument")
	assert.EqualError(t, h.run("course", "abc"), `<id> must be a number, got "abc"`)
	assert.EqualError(t, h.run("enroll", "1"), "missing <studentId> argument")
	assert.EqualError(t, h.run("add-schedule", "1", "1", "MONDAY"), "expected 6 arguments, got 3")
}

func TestHealthNeedsServer(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.run("health"))
}
