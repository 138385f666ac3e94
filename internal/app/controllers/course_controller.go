package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// CourseController handles course CRUD and filtering
type CourseController struct {
	catalog services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalog services.CatalogService) *CourseController {
	return &CourseController{
		catalog: catalog,
	}
}

// ListCourses returns every course, or the filtered subset when any of
// filiere, niveau, code or name is given. GET /courses
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query dto.CourseFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	filter := query.ToModel()
	if filter.IsEmpty() {
		courses, err := c.catalog.ListCourses(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
		return
	}

	courses, err := c.catalog.FilterCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
}

// GetCourse returns a single course. GET /courses/:id
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.catalog.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, ""))
}

// CreateCourse adds a course with a caller-chosen ID. POST /courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := req.ToModel(*req.ID)
	msg, err := c.catalog.AddCourse(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course, msg))
}

// UpdateCourse replaces every field of a course. PUT /courses/:id
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := req.ToModel(id)
	msg, err := c.catalog.UpdateCourse(ctx, id, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, msg))
}

// DeleteCourse removes a course with its enrollments and schedules. DELETE /courses/:id
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	msg, err := c.catalog.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, msg))
}
