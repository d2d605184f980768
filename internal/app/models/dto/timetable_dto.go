package dto

import "github.com/bilguun/eduview/internal/app/models"

// SchoolResponse is one school with its classes on the selection page.
type SchoolResponse struct {
	Code    string   `json:"code" example:"12"`
	Classes []string `json:"classes"`
}

// NameListResponse carries a flat list of entity names.
type NameListResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count" example:"42"`
}

// ScheduleResponse is the full timetable of one class or teacher.
type ScheduleResponse struct {
	Name     string      `json:"name" example:"12-А"`
	Days     []string    `json:"days"`
	Periods  []string    `json:"periods"`
	OddWeek  models.Grid `json:"oddWeek"`
	EvenWeek models.Grid `json:"evenWeek"`
}

// NewNameListResponse builds a name list response.
func NewNameListResponse(names []string) NameListResponse {
	return NameListResponse{Names: names, Count: len(names)}
}

// NewScheduleResponse builds a schedule response for one entity.
func NewScheduleResponse(name string, days, periods []string, schedule *models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		Name:     name,
		Days:     days,
		Periods:  periods,
		OddWeek:  schedule.Odd,
		EvenWeek: schedule.Even,
	}
}
