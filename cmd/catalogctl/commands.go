package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
)

// dialFunc returns the catalog a command should talk to
type dialFunc func(cCtx *cli.Context) services.CatalogService

type healthChecker interface {
	Health(ctx context.Context) (dto.HealthResponse, error)
}

var (
	success = color.New(color.FgGreen)
	heading = color.New(color.FgYellow)
	info    = color.New(color.FgCyan)
)

func newApp(out io.Writer, dial dialFunc) *cli.App {
	return &cli.App{
		Name:   "catalogctl",
		Usage:  "inspect and edit the course catalog",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   "http://localhost:8080",
				Usage:   "catalog server base URL",
				EnvVars: []string{"CATALOG_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "request timeout",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "health",
				Usage: "check the server is up",
				Action: func(cCtx *cli.Context) error {
					checker, ok := dial(cCtx).(healthChecker)
					if !ok {
						return errors.New("health check is only available against a server")
					}
					health, err := checker.Health(cCtx.Context)
					if err != nil {
						return err
					}
					success.Fprintf(out, "%s %s is %s\n", health.Service, health.Version, health.Status)
					return nil
				},
			},
			{
				Name:  "courses",
				Usage: "list courses, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "filiere", Usage: "program, exact match"},
					&cli.StringFlag{Name: "niveau", Usage: "level, exact match"},
					&cli.StringFlag{Name: "code", Usage: "code substring"},
					&cli.StringFlag{Name: "name", Usage: "name substring"},
				},
				Action: func(cCtx *cli.Context) error {
					filter := models.CourseFilter{
						Filiere: cCtx.String("filiere"),
						Niveau:  cCtx.String("niveau"),
						Code:    cCtx.String("code"),
						Name:    cCtx.String("name"),
					}

					catalog := dial(cCtx)
					var courses []models.Course
					var err error
					if filter.IsEmpty() {
						courses, err = catalog.ListCourses(cCtx.Context)
					} else {
						courses, err = catalog.FilterCourses(cCtx.Context, filter)
					}
					if err != nil {
						return err
					}

					heading.Fprintf(out, "\n%d course(s)\n", len(courses))
					printCourses(out, courses)
					return nil
				},
			},
			{
				Name:      "course",
				Usage:     "show one course",
				ArgsUsage: "<id>",
				Action: func(cCtx *cli.Context) error {
					id, err := argID(cCtx, 0, "id")
					if err != nil {
						return err
					}
					course, err := dial(cCtx).GetCourse(cCtx.Context, id)
					if err != nil {
						return err
					}
					printCourses(out, []models.Course{course})
					if course.Description != "" {
						info.Fprintln(out, course.Description)
					}
					return nil
				},
			},
			{
				Name:  "add-course",
				Usage: "create a course",
				Flags: courseFlags(),
				Action: func(cCtx *cli.Context) error {
					course := courseFromFlags(cCtx)
					return report(out, func() (string, error) {
						return dial(cCtx).AddCourse(cCtx.Context, course)
					})
				},
			},
			{
				Name:  "update-course",
				Usage: "replace every field of a course; unset flags clear their field",
				Flags: courseFlags(),
				Action: func(cCtx *cli.Context) error {
					course := courseFromFlags(cCtx)
					return report(out, func() (string, error) {
						return dial(cCtx).UpdateCourse(cCtx.Context, course.ID, course)
					})
				},
			},
			{
				Name:      "delete-course",
				Usage:     "delete a course with its enrollments and schedules",
				ArgsUsage: "<id>",
				Action: func(cCtx *cli.Context) error {
					id, err := argID(cCtx, 0, "id")
					if err != nil {
						return err
					}
					return report(out, func() (string, error) {
						return dial(cCtx).DeleteCourse(cCtx.Context, id)
					})
				},
			},
			{
				Name:      "students",
				Usage:     "list the students enrolled in a course",
				ArgsUsage: "<courseId>",
				Action: func(cCtx *cli.Context) error {
					courseID, err := argID(cCtx, 0, "courseId")
					if err != nil {
						return err
					}
					students, err := dial(cCtx).GetEnrolledStudents(cCtx.Context, courseID)
					if err != nil {
						return err
					}

					table := tablewriter.NewWriter(out)
					table.SetHeader([]string{"Student ID"})
					for _, id := range students {
						table.Append([]string{strconv.FormatInt(id, 10)})
					}
					table.Render()
					return nil
				},
			},
			{
				Name:      "student-courses",
				Usage:     "list the courses a student is enrolled in",
				ArgsUsage: "<studentId>",
				Action: func(cCtx *cli.Context) error {
					studentID, err := argID(cCtx, 0, "studentId")
					if err != nil {
						return err
					}
					courses, err := dial(cCtx).GetStudentCourses(cCtx.Context, studentID)
					if err != nil {
						return err
					}
					printCourses(out, courses)
					return nil
				},
			},
			{
				Name:      "enroll",
				Usage:     "enroll a student in a course",
				ArgsUsage: "<courseId> <studentId>",
				Action: func(cCtx *cli.Context) error {
					courseID, studentID, err := argPair(cCtx, "courseId", "studentId")
					if err != nil {
						return err
					}
					return report(out, func() (string, error) {
						return dial(cCtx).EnrollStudent(cCtx.Context, courseID, studentID)
					})
				},
			},
			{
				Name:      "unenroll",
				Usage:     "remove a student from a course",
				ArgsUsage: "<courseId> <studentId>",
				Action: func(cCtx *cli.Context) error {
					courseID, studentID, err := argPair(cCtx, "courseId", "studentId")
					if err != nil {
						return err
					}
					return report(out, func() (string, error) {
						return dial(cCtx).UnenrollStudent(cCtx.Context, courseID, studentID)
					})
				},
			},
			{
				Name:      "schedules",
				Usage:     "list the weekly slots of a course",
				ArgsUsage: "<courseId>",
				Action: func(cCtx *cli.Context) error {
					courseID, err := argID(cCtx, 0, "courseId")
					if err != nil {
						return err
					}
					schedules, err := dial(cCtx).GetSchedules(cCtx.Context, courseID)
					if err != nil {
						return err
					}
					printSchedules(out, schedules)
					return nil
				},
			},
			{
				Name:      "add-schedule",
				Usage:     "add a weekly slot, rejected when the room is taken",
				ArgsUsage: "<id> <courseId> <day> <start> <end> <room>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.Args().Len() != 6 {
						return fmt.Errorf("expected 6 arguments, got %d", cCtx.Args().Len())
					}
					id, courseID, err := argPair(cCtx, "id", "courseId")
					if err != nil {
						return err
					}
					schedule := models.Schedule{
						ID:        id,
						CourseID:  courseID,
						DayOfWeek: cCtx.Args().Get(2),
						StartTime: cCtx.Args().Get(3),
						EndTime:   cCtx.Args().Get(4),
						Room:      cCtx.Args().Get(5),
					}
					return report(out, func() (string, error) {
						return dial(cCtx).AddSchedule(cCtx.Context, schedule)
					})
				},
			},
			{
				Name:      "delete-schedule",
				Usage:     "remove a weekly slot",
				ArgsUsage: "<id>",
				Action: func(cCtx *cli.Context) error {
					id, err := argID(cCtx, 0, "id")
					if err != nil {
						return err
					}
					return report(out, func() (string, error) {
						return dial(cCtx).DeleteSchedule(cCtx.Context, id)
					})
				},
			},
		},
	}
}

func courseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{Name: "id", Required: true},
		&cli.StringFlag{Name: "code"},
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.IntFlag{Name: "credits"},
		&cli.IntFlag{Name: "hours"},
		&cli.StringFlag{Name: "filiere"},
		&cli.StringFlag{Name: "niveau"},
		&cli.Int64Flag{Name: "teacher", Usage: "teacher id"},
		&cli.StringFlag{Name: "room"},
	}
}

func courseFromFlags(cCtx *cli.Context) models.Course {
	course := models.Course{
		ID:          cCtx.Int64("id"),
		Code:        cCtx.String("code"),
		Name:        cCtx.String("name"),
		Description: cCtx.String("description"),
		Credits:     cCtx.Int("credits"),
		Hours:       cCtx.Int("hours"),
		Filiere:     cCtx.String("filiere"),
		Niveau:      cCtx.String("niveau"),
		Room:        cCtx.String("room"),
	}
	if cCtx.IsSet("teacher") {
		teacher := cCtx.Int64("teacher")
		course.TeacherID = &teacher
	}
	return course
}

// report prints the status message of a successful mutation
func report(out io.Writer, op func() (string, error)) error {
	msg, err := op()
	if err != nil {
		return err
	}
	success.Fprintln(out, msg)
	return nil
}

func argID(cCtx *cli.Context, index int, name string) (int64, error) {
	raw := cCtx.Args().Get(index)
	if raw == "" {
		return 0, fmt.Errorf("missing <%s> argument", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("<%s> must be a number, got %q", name, raw)
	}
	return id, nil
}

func argPair(cCtx *cli.Context, first, second string) (int64, int64, error) {
	a, err := argID(cCtx, 0, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := argID(cCtx, 1, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func printCourses(out io.Writer, courses []models.Course) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Code", "Name", "Credits", "Hours", "Filiere", "Niveau", "Teacher", "Room"})
	for _, c := range courses {
		teacher := "-"
		if c.TeacherID != nil {
			teacher = strconv.FormatInt(*c.TeacherID, 10)
		}
		table.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.Code,
			c.Name,
			strconv.Itoa(c.Credits),
			strconv.Itoa(c.Hours),
			c.Filiere,
			c.Niveau,
			teacher,
			c.Room,
		})
	}
	table.Render()
}

func printSchedules(out io.Writer, schedules []models.Schedule) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Course", "Day", "Start", "End", "Room"})
	for _, s := range schedules {
		table.Append([]string{
			strconv.FormatInt(s.ID, 10),
			strconv.FormatInt(s.CourseID, 10),
			s.DayOfWeek,
			s.StartTime,
			s.EndTime,
			s.Room,
		})
	}
	table.Render()
}
