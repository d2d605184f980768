package parser

import (
	"sort"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// spanEntry tracks a cell that still occupies columns in following rows
// because of a rowspan attribute.
type spanEntry struct {
	cell      *goquery.Selection
	remaining int
}

func intAttr(cell *goquery.Selection, name string, fallback int) int {
	raw, ok := cell.Attr(name)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(normalizeText(raw))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// expandTable flattens a <table> into a dense cell grid, repeating cells into
// every position their rowspan/colspan covers so (row, col) lookups work on
// merged layouts.
func expandTable(table *goquery.Selection) [][]*goquery.Selection {
	var grid [][]*goquery.Selection
	spans := make(map[int]*spanEntry)

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []*goquery.Selection
		col := 0

		consumeSpan := func() bool {
			entry, ok := spans[col]
			if !ok {
				return false
			}
			row = append(row, entry.cell)
			entry.remaining--
			if entry.remaining == 0 {
				delete(spans, col)
			}
			col++
			return true
		}

		for consumeSpan() {
		}

		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			for consumeSpan() {
			}
			rowspan := intAttr(cell, "rowspan", 1)
			colspan := intAttr(cell, "colspan", 1)
			for i := 0; i < colspan; i++ {
				row = append(row, cell)
				if rowspan > 1 {
					spans[col] = &spanEntry{cell: cell, remaining: rowspan - 1}
				}
				col++
			}
		})

		for consumeSpan() {
		}

		grid = append(grid, row)
	})

	return grid
}

// tableStructure is the decoded layout of one export table: day labels in
// canonical order, period labels top to bottom, and the lesson cells indexed
// [period][day].
type tableStructure struct {
	days    []string
	periods []string
	cells   [][]*goquery.Selection
}

// parseTableStructure decodes a timetable table. The first row is the day
// header (after a corner cell), remaining rows are one time slot each. Tables
// with days on rows instead of columns are detected and transposed.
func parseTableStructure(table *goquery.Selection) tableStructure {
	grid := expandTable(table)
	if len(grid) == 0 {
		return tableStructure{}
	}

	headerCells := grid[0]
	var rawDays []string
	if len(headerCells) > 1 {
		for _, cell := range headerCells[1:] {
			rawDays = append(rawDays, flatText(cell))
		}
	}

	var periods []string
	var matrix [][]*goquery.Selection
	for _, row := range grid[1:] {
		if len(row) == 0 {
			continue
		}
		label := flatText(row[0])
		if label != "" {
			if digits := digitRunRe.FindString(label); digits != "" {
				label = digits
			}
		}
		if label == "" {
			label = strconv.Itoa(len(periods) + 1)
		}
		periods = append(periods, label)
		matrix = append(matrix, row[1:])
	}

	if len(rawDays) > 0 && allPeriodLabels(rawDays) {
		// Days were on rows: flip the matrix so days become columns again.
		rawDays, periods, matrix = transpose(rawDays, periods, matrix)
	}

	var normalizedDays []string
	var dayIndices []int
	for idx, label := range rawDays {
		if normalized := normalizeDayLabel(label); normalized != "" {
			normalizedDays = append(normalizedDays, normalized)
			dayIndices = append(dayIndices, idx)
		}
	}

	type dayColumn struct {
		index int
		day   string
	}
	ordered := make([]dayColumn, len(normalizedDays))
	for i := range normalizedDays {
		ordered[i] = dayColumn{index: dayIndices[i], day: normalizedDays[i]}
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return columnSortKey(ordered[a].day, ordered[a].index) < columnSortKey(ordered[b].day, ordered[b].index)
	})
	if len(ordered) == 0 {
		for idx, label := range rawDays {
			ordered = append(ordered, dayColumn{index: idx, day: label})
		}
	}

	days := make([]string, len(ordered))
	for i, column := range ordered {
		days[i] = column.day
	}

	orderedMatrix := make([][]*goquery.Selection, 0, len(matrix))
	for _, row := range matrix {
		orderedRow := make([]*goquery.Selection, 0, len(ordered))
		for _, column := range ordered {
			if column.index < len(row) {
				orderedRow = append(orderedRow, row[column.index])
			}
		}
		orderedMatrix = append(orderedMatrix, orderedRow)
	}

	return tableStructure{days: days, periods: periods, cells: orderedMatrix}
}

// columnSortKey orders known days canonically and keeps unknown labels after
// them in their original column order.
func columnSortKey(day string, index int) int {
	if pos := dayOrderIndex(day); pos >= 0 {
		return pos
	}
	return len(dayOrder) + index
}

func allPeriodLabels(labels []string) bool {
	for _, label := range labels {
		if !isPeriodLabel(label) {
			return false
		}
	}
	return true
}

// transpose swaps the day and period axes of a parsed table. Ragged rows are
// truncated to the shortest one so every transposed position holds a cell.
func transpose(rawDays, periods []string, matrix [][]*goquery.Selection) ([]string, []string, [][]*goquery.Selection) {
	width := 0
	for i, row := range matrix {
		if i == 0 || len(row) < width {
			width = len(row)
		}
	}
	flipped := make([][]*goquery.Selection, width)
	for i := range flipped {
		flipped[i] = make([]*goquery.Selection, len(matrix))
		for j, row := range matrix {
			flipped[i][j] = row[i]
		}
	}

	newDays := make([]string, len(periods))
	for i, period := range periods {
		newDays[i] = normalizeText(period)
	}
	return newDays, rawDays, flipped
}
