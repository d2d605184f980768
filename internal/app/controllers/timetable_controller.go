package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bilguun/eduview/internal/app/models/dto"
	"github.com/bilguun/eduview/internal/app/services"
	"github.com/bilguun/eduview/internal/middleware"
	"github.com/bilguun/eduview/internal/pkg/metrics"
)

// TimetableController handles the JSON timetable lookups
type TimetableController struct {
	timetableService services.TimetableService
	recorder         *metrics.Recorder
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService, recorder *metrics.Recorder) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
		recorder:         recorder,
	}
}

// GetSchools lists all schools with their classes
// @Summary List schools
// @Description Lists every school code with the classes belonging to it
// @Tags timetables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SchoolResponse} "Schools retrieved successfully"
// @Router /schools [get]
func (c *TimetableController) GetSchools(ctx *gin.Context) {
	grouping := c.timetableService.SchoolClasses()
	schools := make([]dto.SchoolResponse, 0, len(grouping))
	for _, code := range c.timetableService.ListSchools() {
		schools = append(schools, dto.SchoolResponse{Code: code, Classes: grouping[code]})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schools,
		Timestamp: time.Now(),
	})
}

// GetSchoolByName retrieves one school with its classes
// @Summary Get school
// @Description Retrieves the classes of a school by exact code
// @Tags timetables
// @Produce json
// @Param name path string true "School code"
// @Success 200 {object} dto.APIResponse{data=dto.SchoolResponse} "School retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{name} [get]
func (c *TimetableController) GetSchoolByName(ctx *gin.Context) {
	name := ctx.Param("name")

	classes, err := c.timetableService.GetSchoolClasses(name)
	c.recorder.RecordLookup("school", err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SchoolResponse{Code: name, Classes: classes},
		Timestamp: time.Now(),
	})
}

// GetClasses lists all class names
// @Summary List classes
// @Description Lists every known class name in sorted order
// @Tags timetables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NameListResponse} "Classes retrieved successfully"
// @Router /classes [get]
func (c *TimetableController) GetClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewNameListResponse(c.timetableService.ListClasses()),
		Timestamp: time.Now(),
	})
}

// GetClassByName retrieves the schedule of one class
// @Summary Get class schedule
// @Description Retrieves the odd/even week timetable of a class by exact name
// @Tags timetables
// @Produce json
// @Param name path string true "Class name"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{name} [get]
func (c *TimetableController) GetClassByName(ctx *gin.Context) {
	name := ctx.Param("name")

	schedule, err := c.timetableService.GetClassSchedule(name)
	c.recorder.RecordLookup("class", err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewScheduleResponse(name, c.timetableService.Days(), c.timetableService.Periods(), schedule),
		Timestamp: time.Now(),
	})
}

// GetTeachers lists all teacher names
// @Summary List teachers
// @Description Lists every known teacher name in sorted order
// @Tags timetables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NameListResponse} "Teachers retrieved successfully"
// @Router /teachers [get]
func (c *TimetableController) GetTeachers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewNameListResponse(c.timetableService.ListTeachers()),
		Timestamp: time.Now(),
	})
}

// GetTeacherByName retrieves the schedule of one teacher
// @Summary Get teacher schedule
// @Description Retrieves the odd/even week timetable of a teacher by exact name
// @Tags timetables
// @Produce json
// @Param name path string true "Teacher name"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{name} [get]
func (c *TimetableController) GetTeacherByName(ctx *gin.Context) {
	name := ctx.Param("name")

	schedule, err := c.timetableService.GetTeacherSchedule(name)
	c.recorder.RecordLookup("teacher", err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewScheduleResponse(name, c.timetableService.Days(), c.timetableService.Periods(), schedule),
		Timestamp: time.Now(),
	})
}
