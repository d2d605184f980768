// Package parser extracts timetables from EduPage HTML exports. An export is
// a flat document of section headings (one per class or teacher) followed by
// one or two timetable tables. Parsing is best effort: exports are hand
// edited upstream, so malformed sections and rows are skipped rather than
// failing the whole document.
package parser

import (
	"fmt"
	"io"
	"sort"

	"github.com/PuerkitoBio/goquery"

	"github.com/bilguun/eduview/internal/app/models"
)

const headingSelector = "h1, h2, h3, h4"

// Parse reads one EduPage export and returns its decoded document. The day
// and period labels of the first section that has them become the document's
// labels; later sections reuse them so hand-edited headers cannot reorder
// the grid halfway through a file.
func Parse(r io.Reader) (*models.Document, error) {
	root, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export HTML: %w", err)
	}

	sections := collectSections(root)
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &models.Document{
		Names:     names,
		Schedules: make(map[string]*models.Schedule, len(names)),
	}
	for _, name := range names {
		days, periods, odd, even := buildWeekMatrices(sections[name], doc.Days)
		if len(doc.Days) == 0 && len(days) > 0 {
			doc.Days = days
		}
		if len(doc.Periods) == 0 && len(periods) > 0 {
			doc.Periods = periods
		}
		doc.Schedules[name] = &models.Schedule{Odd: odd, Even: even}
	}

	return doc, nil
}

// collectSections maps each non-empty heading title to the tables that follow
// it before the next heading. Headings without tables are dropped.
func collectSections(root *goquery.Document) map[string][]*goquery.Selection {
	sections := make(map[string][]*goquery.Selection)
	root.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		title := flatText(heading)
		if title == "" {
			return
		}
		var tables []*goquery.Selection
		heading.NextUntil(headingSelector).Filter("table").Each(func(_ int, table *goquery.Selection) {
			tables = append(tables, table)
		})
		if len(tables) > 0 {
			sections[title] = tables
		}
	})
	return sections
}

// buildWeekMatrices turns a section's tables into odd- and even-week lesson
// grids. Two tables mean one grid per parity; a single table carries both
// parities inside its cells.
func buildWeekMatrices(tables []*goquery.Selection, globalDays []string) (days, periods []string, odd, even models.Grid) {
	switch {
	case len(tables) >= 2:
		first := parseTableStructure(tables[0])
		second := parseTableStructure(tables[1])

		days = first.days
		if len(globalDays) > 0 {
			days = globalDays
		}
		periods = first.periods
		odd = lessonMatrix(first.cells)
		even = lessonMatrix(second.cells)

		if !equalLabels(days, second.days) || !equalLabels(periods, second.periods) {
			if len(days) == 0 {
				days = second.days
			}
			if len(periods) == 0 {
				periods = second.periods
			}
		}

	case len(tables) == 1:
		structure := parseTableStructure(tables[0])
		days = structure.days
		periods = structure.periods
		for _, row := range structure.cells {
			oddRow := make([]models.Lesson, 0, len(row))
			evenRow := make([]models.Lesson, 0, len(row))
			for _, cell := range row {
				weeks := splitCellByWeek(cell)
				oddRow = append(oddRow, weeks[weekOdd])
				evenLesson, ok := weeks[weekEven]
				if !ok {
					evenLesson = weeks[weekOdd]
				}
				evenRow = append(evenRow, evenLesson)
			}
			odd = append(odd, oddRow)
			even = append(even, evenRow)
		}

	default:
		days = globalDays
	}

	return days, periods, odd, even
}

func lessonMatrix(cells [][]*goquery.Selection) models.Grid {
	grid := make(models.Grid, 0, len(cells))
	for _, row := range cells {
		lessons := make([]models.Lesson, 0, len(row))
		for _, cell := range row {
			lessons = append(lessons, parseCell(cell))
		}
		grid = append(grid, lessons)
	}
	return grid
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
