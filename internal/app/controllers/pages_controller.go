package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilguun/eduview/internal/app/services"
	"github.com/bilguun/eduview/internal/pkg/metrics"
)

// PagesController renders the HTML selection and timetable pages.
type PagesController struct {
	timetableService services.TimetableService
	recorder         *metrics.Recorder
}

// NewPagesController creates a new PagesController
func NewPagesController(timetableService services.TimetableService, recorder *metrics.Recorder) *PagesController {
	return &PagesController{
		timetableService: timetableService,
		recorder:         recorder,
	}
}

// Index renders the selection page: a school picker feeding a class list,
// plus the teacher list.
func (c *PagesController) Index(ctx *gin.Context) {
	c.recorder.RecordPageView("index")

	// The class picker filters client side, so the grouping ships as JSON.
	grouping, err := json.Marshal(c.timetableService.SchoolClasses())
	if err != nil {
		ctx.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"message": "Failed to prepare the selection page",
		})
		return
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"schools":           c.timetableService.ListSchools(),
		"teacherNames":      c.timetableService.ListTeachers(),
		"schoolClassesJSON": template.JS(grouping),
	})
}

// ClassTimetable renders the odd/even week grids of one class.
func (c *PagesController) ClassTimetable(ctx *gin.Context) {
	name := ctx.Query("name")

	schedule, err := c.timetableService.GetClassSchedule(name)
	c.recorder.RecordLookup("class", err == nil)
	if err != nil {
		c.renderNotFound(ctx, "Class not found: "+name)
		return
	}

	c.recorder.RecordPageView("class")
	ctx.HTML(http.StatusOK, "class.html", gin.H{
		"name":    name,
		"days":    c.timetableService.Days(),
		"periods": c.timetableService.Periods(),
		"odd":     schedule.Odd,
		"even":    schedule.Even,
	})
}

// TeacherTimetable renders the odd/even week grids of one teacher.
func (c *PagesController) TeacherTimetable(ctx *gin.Context) {
	name := ctx.Query("name")

	schedule, err := c.timetableService.GetTeacherSchedule(name)
	c.recorder.RecordLookup("teacher", err == nil)
	if err != nil {
		c.renderNotFound(ctx, "Teacher not found: "+name)
		return
	}

	c.recorder.RecordPageView("teacher")
	ctx.HTML(http.StatusOK, "teacher.html", gin.H{
		"name":    name,
		"days":    c.timetableService.Days(),
		"periods": c.timetableService.Periods(),
		"odd":     schedule.Odd,
		"even":    schedule.Even,
	})
}

func (c *PagesController) renderNotFound(ctx *gin.Context, message string) {
	ctx.HTML(http.StatusNotFound, "error.html", gin.H{
		"message": message,
	})
}
