// Package client talks to the catalog REST API.
//
// Client satisfies services.CatalogService, so remote callers see the same
// status messages and the same *apperrors.CatalogError kinds as in-process ones.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

const apiPrefix = "/api/v1"

var _ services.CatalogService = (*Client)(nil)

// Client is a typed wrapper over the /api/v1 endpoints
type Client struct {
	http *resty.Client
}

// New creates a client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

// toError rebuilds the catalog error a failed response describes
func (e errorEnvelope) toError(status int) error {
	code, message := e.Code, e.Message
	var details map[string]interface{}
	if e.Error != nil {
		if code == "" {
			code = e.Error.Code
		}
		if message == "" {
			message = e.Error.Message
		}
		switch d := e.Error.Details.(type) {
		case nil:
		case map[string]interface{}:
			details = d
		default:
			details = map[string]interface{}{"details": d}
		}
	}

	kind := apperrors.KindForCode(code)
	if kind == apperrors.KindInternal {
		if message == "" {
			message = http.StatusText(status)
		}
		return fmt.Errorf("catalog api: status %d: %s", status, message)
	}

	err := apperrors.New(kind, message)
	if details != nil {
		err = err.WithDetails(details)
	}
	return err
}

// do executes one request and decodes the envelope's data into out when out is non-nil.
// It returns the envelope message.
func (c *Client) do(ctx context.Context, method, path string, configure func(*resty.Request), out interface{}) (string, error) {
	var env envelope
	var apiErr errorEnvelope

	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&apiErr)
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return "", apiErr.toError(resp.StatusCode())
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return env.Message, nil
}

func withID(name string, id int64) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetPathParam(name, strconv.FormatInt(id, 10))
	}
}

func withBody(body interface{}) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetBody(body)
	}
}

// Health reports the server status
func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	var health dto.HealthResponse
	_, err := c.do(ctx, http.MethodGet, "/health", nil, &health)
	return health, err
}

// GetCourse fetches one course
func (c *Client) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	_, err := c.do(ctx, http.MethodGet, "/courses/{id}", withID("id", id), &course)
	return course, err
}

// ListCourses fetches every course
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	_, err := c.do(ctx, http.MethodGet, "/courses", nil, &courses)
	return courses, err
}

// AddCourse creates a course
func (c *Client) AddCourse(ctx context.Context, course models.Course) (string, error) {
	return c.do(ctx, http.MethodPost, "/courses", withBody(course), nil)
}

// UpdateCourse replaces the course stored under id
func (c *Client) UpdateCourse(ctx context.Context, id int64, course models.Course) (string, error) {
	return c.do(ctx, http.MethodPut, "/courses/{id}", func(r *resty.Request) {
		withID("id", id)(r)
		r.SetBody(course)
	}, nil)
}

// DeleteCourse removes a course with its enrollments and schedules
func (c *Client) DeleteCourse(ctx context.Context, id int64) (string, error) {
	return c.do(ctx, http.MethodDelete, "/courses/{id}", withID("id", id), nil)
}

// FilterCourses fetches the courses matching every non-empty filter field
func (c *Client) FilterCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	params := map[string]string{}
	for key, value := range map[string]string{
		"filiere": filter.Filiere,
		"niveau":  filter.Niveau,
		"code":    filter.Code,
		"name":    filter.Name,
	} {
		if value != "" {
			params[key] = value
		}
	}

	var courses []models.Course
	_, err := c.do(ctx, http.MethodGet, "/courses", func(r *resty.Request) {
		r.SetQueryParams(params)
	}, &courses)
	return courses, err
}

// EnrollStudent adds studentID to a course
func (c *Client) EnrollStudent(ctx context.Context, courseID, studentID int64) (string, error) {
	return c.do(ctx, http.MethodPost, "/courses/{id}/enrollments", func(r *resty.Request) {
		withID("id", courseID)(r)
		r.SetBody(dto.EnrollRequest{StudentID: &studentID})
	}, nil)
}

// GetEnrolledStudents fetches the student ids of a course
func (c *Client) GetEnrolledStudents(ctx context.Context, courseID int64) ([]int64, error) {
	var students []int64
	_, err := c.do(ctx, http.MethodGet, "/courses/{id}/enrollments", withID("id", courseID), &students)
	return students, err
}

// UnenrollStudent removes studentID from a course
func (c *Client) UnenrollStudent(ctx context.Context, courseID, studentID int64) (string, error) {
	return c.do(ctx, http.MethodDelete, "/courses/{id}/enrollments/{studentId}", func(r *resty.Request) {
		withID("id", courseID)(r)
		withID("studentId", studentID)(r)
	}, nil)
}

// GetStudentCourses fetches the courses a student is enrolled in
func (c *Client) GetStudentCourses(ctx context.Context, studentID int64) ([]models.Course, error) {
	var courses []models.Course
	_, err := c.do(ctx, http.MethodGet, "/students/{studentId}/courses", withID("studentId", studentID), &courses)
	return courses, err
}

// AddSchedule creates a weekly slot
func (c *Client) AddSchedule(ctx context.Context, schedule models.Schedule) (string, error) {
	return c.do(ctx, http.MethodPost, "/schedules", withBody(schedule), nil)
}

// GetSchedules fetches the slots of a course
func (c *Client) GetSchedules(ctx context.Context, courseID int64) ([]models.Schedule, error) {
	var schedules []models.Schedule
	_, err := c.do(ctx, http.MethodGet, "/courses/{id}/schedules", withID("id", courseID), &schedules)
	return schedules, err
}

// DeleteSchedule removes a slot
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID int64) (string, error) {
	return c.do(ctx, http.MethodDelete, "/schedules/{id}", withID("id", scheduleID), nil)
}
