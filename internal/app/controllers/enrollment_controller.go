package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// EnrollmentController handles student enrollments
type EnrollmentController struct {
	catalog services.CatalogService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(catalog services.CatalogService) *EnrollmentController {
	return &EnrollmentController{
		catalog: catalog,
	}
}

// Enroll adds a student to a course. POST /courses/:id/enrollments
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	msg, err := c.catalog.EnrollStudent(ctx, courseID, *req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"courseId": courseID, "studentId": *req.StudentID}, msg))
}

// ListEnrolled returns the student IDs of a course. GET /courses/:id/enrollments
func (c *EnrollmentController) ListEnrolled(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.catalog.GetEnrolledStudents(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}

// Unenroll removes a student from a course. DELETE /courses/:id/enrollments/:studentId
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	msg, err := c.catalog.UnenrollStudent(ctx, courseID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, msg))
}

// StudentCourses returns the courses a student is enrolled in. GET /students/:studentId/courses
func (c *EnrollmentController) StudentCourses(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	courses, err := c.catalog.GetStudentCourses(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
}
