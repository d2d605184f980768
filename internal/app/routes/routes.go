package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bilguun/eduview/internal/app/controllers"
	"github.com/bilguun/eduview/internal/app/models/dto"
	"github.com/bilguun/eduview/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pagesController *controllers.PagesController,
	timetableController *controllers.TimetableController,
) {
	// --- HTML pages ---
	router.GET("/", pagesController.Index)
	router.GET("/class", pagesController.ClassTimetable)
	router.GET("/teacher", pagesController.TeacherTimetable)

	// --- JSON API ---
	v1 := router.Group("/api/v1")
	{
		schools := v1.Group("/schools")
		{
			schools.GET("", timetableController.GetSchools)
			schools.GET("/:name", timetableController.GetSchoolByName)
		}

		classes := v1.Group("/classes")
		{
			classes.GET("", timetableController.GetClasses)
			classes.GET("/:name", timetableController.GetClassByName)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.GET("", timetableController.GetTeachers)
			teachers.GET("/:name", timetableController.GetTeacherByName)
		}

		// Health check endpoint (public)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, dto.APIResponse{
				Data:      gin.H{"status": "ok"},
				Timestamp: time.Now(),
			})
		})
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
