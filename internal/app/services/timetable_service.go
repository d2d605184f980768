package services

import (
	"fmt"
	"strings"

	"github.com/bilguun/eduview/internal/app/models"
	"github.com/bilguun/eduview/internal/app/repositories"
	"github.com/bilguun/eduview/internal/pkg/apperrors"
)

// TimetableService defines the interface for timetable lookups
type TimetableService interface {
	Days() []string
	Periods() []string
	ListSchools() []string
	ListClasses() []string
	ListTeachers() []string
	SchoolClasses() map[string][]string
	GetSchoolClasses(name string) ([]string, error)
	GetClassSchedule(name string) (*models.Schedule, error)
	GetTeacherSchedule(name string) (*models.Schedule, error)
}

// timetableServiceImpl implements the TimetableService interface
type timetableServiceImpl struct {
	store *repositories.TimetableStore
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(store *repositories.TimetableStore) TimetableService {
	return &timetableServiceImpl{store: store}
}

// Days returns the weekday labels of the grid.
func (s *timetableServiceImpl) Days() []string {
	return s.store.Days()
}

// Periods returns the time-slot labels of the grid.
func (s *timetableServiceImpl) Periods() []string {
	return s.store.Periods()
}

// ListSchools returns the known school codes.
func (s *timetableServiceImpl) ListSchools() []string {
	return s.store.Schools()
}

// ListClasses returns all known class names.
func (s *timetableServiceImpl) ListClasses() []string {
	return s.store.ClassNames()
}

// ListTeachers returns all known teacher names.
func (s *timetableServiceImpl) ListTeachers() []string {
	return s.store.TeacherNames()
}

// SchoolClasses returns the school-to-classes grouping for the index page.
func (s *timetableServiceImpl) SchoolClasses() map[string][]string {
	return s.store.AllSchoolClasses()
}

// GetSchoolClasses returns the classes of one school by exact code.
func (s *timetableServiceImpl) GetSchoolClasses(name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: school code cannot be empty", apperrors.ErrValidationFailed)
	}
	classes, ok := s.store.SchoolClasses(name)
	if !ok {
		return nil, apperrors.ErrSchoolNotFound
	}
	return classes, nil
}

// GetClassSchedule returns the schedule of a class by exact name. An unknown
// name is a user input error, not a system fault.
func (s *timetableServiceImpl) GetClassSchedule(name string) (*models.Schedule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: class name cannot be empty", apperrors.ErrValidationFailed)
	}
	schedule, ok := s.store.ClassSchedule(name)
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return schedule, nil
}

// GetTeacherSchedule returns the schedule of a teacher by exact name.
func (s *timetableServiceImpl) GetTeacherSchedule(name string) (*models.Schedule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: teacher name cannot be empty", apperrors.ErrValidationFailed)
	}
	schedule, ok := s.store.TeacherSchedule(name)
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return schedule, nil
}
