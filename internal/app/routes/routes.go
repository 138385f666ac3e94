package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
)

// Version of the REST surface reported by the health check
const Version = "1.0.0"

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	scheduleController *controllers.ScheduleController,
) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)

		courses.GET("/:id/enrollments", enrollmentController.ListEnrolled)
		courses.POST("/:id/enrollments", enrollmentController.Enroll)
		courses.DELETE("/:id/enrollments/:studentId", enrollmentController.Unenroll)

		courses.GET("/:id/schedules", scheduleController.ListCourseSchedules)
	}

	v1.GET("/students/:studentId/courses", enrollmentController.StudentCourses)

	schedules := v1.Group("/schedules")
	{
		schedules.POST("", scheduleController.CreateSchedule)
		schedules.DELETE("/:id", scheduleController.DeleteSchedule)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{
			Status:  "ok",
			Service: "course-catalog",
			Version: Version,
		}, ""))
	})
}
