package repositories

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bilguun/eduview/internal/app/models"
	"github.com/bilguun/eduview/internal/app/parser"
	"github.com/bilguun/eduview/internal/pkg/apperrors"
)

// TimetableStore is the immutable lookup structure built from the two export
// files at startup. Handlers only ever read it, so no locking is needed.
type TimetableStore struct {
	days    []string
	periods []string

	classes      map[string]*models.Schedule
	teachers     map[string]*models.Schedule
	classNames   []string
	teacherNames []string

	schools       []string
	schoolClasses map[string][]string
}

// NewTimetableStore builds the store from the parsed class and teacher
// documents. Day and period labels come from the classes document, falling
// back to the teachers one when a hand-edited export lost its headers.
func NewTimetableStore(classes, teachers *models.Document) *TimetableStore {
	store := &TimetableStore{
		days:          classes.Days,
		periods:       classes.Periods,
		classes:       classes.Schedules,
		teachers:      teachers.Schedules,
		classNames:    classes.Names,
		teacherNames:  teachers.Names,
		schoolClasses: make(map[string][]string),
	}
	if len(store.days) == 0 {
		store.days = teachers.Days
	}
	if len(store.periods) == 0 {
		store.periods = teachers.Periods
	}

	// Class names carry the school code before the first dash, e.g. "1-А".
	for _, name := range store.classNames {
		school := name
		if idx := strings.Index(name, "-"); idx >= 0 {
			school = name[:idx]
		}
		store.schoolClasses[school] = append(store.schoolClasses[school], name)
	}
	for school := range store.schoolClasses {
		store.schools = append(store.schools, school)
		sort.Strings(store.schoolClasses[school])
	}
	sort.Strings(store.schools)

	return store
}

// LoadTimetableStore reads and parses both export files. Any missing or
// unreadable file is a startup configuration error, not a runtime condition.
func LoadTimetableStore(classesPath, teachersPath string, lgr zerolog.Logger) (*TimetableStore, error) {
	classes, err := parseExportFile(classesPath)
	if err != nil {
		return nil, err
	}
	teachers, err := parseExportFile(teachersPath)
	if err != nil {
		return nil, err
	}

	store := NewTimetableStore(classes, teachers)
	lgr.Info().
		Int("classes", len(store.classNames)).
		Int("teachers", len(store.teacherNames)).
		Int("schools", len(store.schools)).
		Msg("Timetable store loaded")
	return store, nil
}

func parseExportFile(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewCustomError(err, fmt.Sprintf("failed to open export file %s", path))
	}
	defer file.Close()

	doc, err := parser.Parse(file)
	if err != nil {
		return nil, apperrors.NewCustomError(err, fmt.Sprintf("failed to parse export file %s", path))
	}
	if len(doc.Names) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyExport, fmt.Sprintf("export file %s contains no timetables", path))
	}
	return doc, nil
}

// Days returns the weekday labels shared by all grids.
func (s *TimetableStore) Days() []string {
	return s.days
}

// Periods returns the time-slot labels shared by all grids.
func (s *TimetableStore) Periods() []string {
	return s.periods
}

// ClassNames returns all class names in sorted order.
func (s *TimetableStore) ClassNames() []string {
	return s.classNames
}

// TeacherNames returns all teacher names in sorted order.
func (s *TimetableStore) TeacherNames() []string {
	return s.teacherNames
}

// Schools returns the school codes in sorted order.
func (s *TimetableStore) Schools() []string {
	return s.schools
}

// SchoolClasses returns the class names belonging to a school code.
func (s *TimetableStore) SchoolClasses(school string) ([]string, bool) {
	classes, ok := s.schoolClasses[school]
	return classes, ok
}

// AllSchoolClasses returns the full school-to-classes grouping.
func (s *TimetableStore) AllSchoolClasses() map[string][]string {
	return s.schoolClasses
}

// ClassSchedule returns the schedule of a class by exact name.
func (s *TimetableStore) ClassSchedule(name string) (*models.Schedule, bool) {
	schedule, ok := s.classes[name]
	return schedule, ok
}

// TeacherSchedule returns the schedule of a teacher by exact name.
func (s *TimetableStore) TeacherSchedule(name string) (*models.Schedule, bool) {
	schedule, ok := s.teachers[name]
	return schedule, ok
}
