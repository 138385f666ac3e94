package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// ScheduleController handles weekly course schedules
type ScheduleController struct {
	catalog services.CatalogService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(catalog services.CatalogService) *ScheduleController {
	return &ScheduleController{
		catalog: catalog,
	}
}

// CreateSchedule adds a slot, rejecting room conflicts. POST /schedules
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	schedule := req.ToModel()
	msg, err := c.catalog.AddSchedule(ctx, schedule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(schedule, msg))
}

// ListCourseSchedules returns the slots of a course. GET /courses/:id/schedules
func (c *ScheduleController) ListCourseSchedules(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	schedules, err := c.catalog.GetSchedules(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedules, ""))
}

// DeleteSchedule removes a slot. DELETE /schedules/:id
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	msg, err := c.catalog.DeleteSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, msg))
}
