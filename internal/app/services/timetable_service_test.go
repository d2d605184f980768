package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilguun/eduview/internal/app/models"
	"github.com/bilguun/eduview/internal/app/repositories"
	"github.com/bilguun/eduview/internal/pkg/apperrors"
)

func newTestService() TimetableService {
	classes := &models.Document{
		Days:    []string{"Даваа", "Мягмар"},
		Periods: []string{"1", "2"},
		Names:   []string{"1-А", "1-Б", "2-А"},
		Schedules: map[string]*models.Schedule{
			"1-А": {Odd: models.Grid{{models.Lesson{Subject: "Математик", Counterpart: "Б. Болд", Room: "201"}}}},
			"1-Б": {},
			"2-А": {},
		},
	}
	teachers := &models.Document{
		Names: []string{"Б. Болд", "Д. Оюун"},
		Schedules: map[string]*models.Schedule{
			"Б. Болд": {Odd: models.Grid{{models.Lesson{Subject: "Математик", Counterpart: "1-А"}}}},
			"Д. Оюун": {},
		},
	}
	return NewTimetableService(repositories.NewTimetableStore(classes, teachers))
}

func TestListClasses_UniqueAndSorted(t *testing.T) {
	service := newTestService()

	classes := service.ListClasses()
	assert.Equal(t, []string{"1-А", "1-Б", "2-А"}, classes)

	seen := make(map[string]bool, len(classes))
	for _, name := range classes {
		assert.False(t, seen[name], "duplicate class %s", name)
		seen[name] = true
	}
}

func TestEveryListedNameResolves(t *testing.T) {
	service := newTestService()

	for _, name := range service.ListClasses() {
		schedule, err := service.GetClassSchedule(name)
		require.NoError(t, err, "class %s", name)
		require.NotNil(t, schedule)
	}
	for _, name := range service.ListTeachers() {
		schedule, err := service.GetTeacherSchedule(name)
		require.NoError(t, err, "teacher %s", name)
		require.NotNil(t, schedule)
	}
}

func TestGetClassSchedule_NotFound(t *testing.T) {
	service := newTestService()

	_, err := service.GetClassSchedule("11-Ж")
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestGetTeacherSchedule_NotFound(t *testing.T) {
	service := newTestService()

	_, err := service.GetTeacherSchedule("Хэн ч биш")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestGetSchedule_EmptyName(t *testing.T) {
	service := newTestService()

	_, err := service.GetClassSchedule("  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.GetTeacherSchedule("")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetSchoolClasses(t *testing.T) {
	service := newTestService()

	classes, err := service.GetSchoolClasses("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1-А", "1-Б"}, classes)

	_, err = service.GetSchoolClasses("99")
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)

	_, err = service.GetSchoolClasses("  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSchoolClasses(t *testing.T) {
	service := newTestService()

	assert.Equal(t, []string{"1", "2"}, service.ListSchools())

	grouping := service.SchoolClasses()
	assert.Equal(t, []string{"1-А", "1-Б"}, grouping["1"])
	assert.Equal(t, []string{"2-А"}, grouping["2"])
}
