package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bilguun/eduview/internal/app/models"
)

// weekParity identifies which half of the two-week rotation an entry is for.
type weekParity string

const (
	weekOdd  weekParity = "odd"
	weekEven weekParity = "even"
)

// lessonFromLines maps the text lines of a cell entry onto a lesson. The
// export layout is fixed: subject, counterpart, room, then any group labels.
func lessonFromLines(lines []string) models.Lesson {
	lesson := models.Lesson{}
	if len(lines) > 0 {
		lesson.Subject = lines[0]
	}
	if len(lines) > 1 {
		lesson.Counterpart = lines[1]
	}
	if len(lines) > 2 {
		lesson.Room = lines[2]
	}
	if len(lines) > 3 {
		lesson.Extra = append(lesson.Extra, lines[3:]...)
	}
	return lesson
}

// parseCell reads a whole cell as a single lesson, ignoring week markers.
func parseCell(cell *goquery.Selection) models.Lesson {
	return lessonFromLines(strippedStrings(cell))
}

// detectWeekFromClasses inspects CSS classes for an odd/even week marker.
func detectWeekFromClasses(classAttr string) (weekParity, bool) {
	for _, class := range strings.Fields(classAttr) {
		lower := strings.ToLower(class)
		if strings.Contains(lower, "odd") || strings.Contains(lower, "week1") || strings.Contains(lower, "aweek") {
			return weekOdd, true
		}
		if strings.Contains(lower, "even") || strings.Contains(lower, "week2") || strings.Contains(lower, "bweek") {
			return weekEven, true
		}
	}
	return "", false
}

// detectWeekFromAttr inspects a data-week attribute for an odd/even marker.
func detectWeekFromAttr(value string) (weekParity, bool) {
	lower := strings.ToLower(value)
	if strings.Contains(lower, "odd") || strings.HasSuffix(lower, "1") {
		return weekOdd, true
	}
	if strings.Contains(lower, "even") || strings.HasSuffix(lower, "2") {
		return weekEven, true
	}
	return "", false
}

// splitCellByWeek extracts the odd- and even-week lessons from a single cell
// of a combined-weeks table. Entries are classified per child element by CSS
// class or data-week attribute. Unmarked entries fall back to position:
// exactly two unmarked children mean odd then even, a single entry serves
// both parities, and a missing parity mirrors the other one.
func splitCellByWeek(cell *goquery.Selection) map[weekParity]models.Lesson {
	type cellEntry struct {
		week    weekParity
		known   bool
		element *goquery.Selection
	}

	var entries []cellEntry
	cell.Children().Each(func(_ int, child *goquery.Selection) {
		// Line breaks separate text lines inside one entry, they are not
		// entry containers themselves.
		if goquery.NodeName(child) == "br" {
			return
		}
		week, known := detectWeekFromClasses(child.AttrOr("class", ""))
		if !known {
			if attr, ok := child.Attr("data-week"); ok {
				week, known = detectWeekFromAttr(attr)
			}
		}
		entries = append(entries, cellEntry{week: week, known: known, element: child})
	})
	if len(entries) == 0 {
		entries = []cellEntry{{element: cell}}
	}

	var oddEntries, evenEntries, unknownEntries []*goquery.Selection
	for _, entry := range entries {
		switch {
		case entry.known && entry.week == weekOdd:
			oddEntries = append(oddEntries, entry.element)
		case entry.known && entry.week == weekEven:
			evenEntries = append(evenEntries, entry.element)
		default:
			unknownEntries = append(unknownEntries, entry.element)
		}
	}

	if len(oddEntries) == 0 && len(evenEntries) == 0 && len(unknownEntries) == 2 {
		oddEntries = append(oddEntries, unknownEntries[0])
		evenEntries = append(evenEntries, unknownEntries[1])
		unknownEntries = nil
	}
	if len(oddEntries) == 0 && len(unknownEntries) > 0 {
		oddEntries = append(oddEntries, unknownEntries[0])
	}
	if len(evenEntries) == 0 && len(unknownEntries) > 0 {
		evenEntries = append(evenEntries, unknownEntries[len(unknownEntries)-1])
	}
	if len(oddEntries) > 0 && len(evenEntries) == 0 {
		evenEntries = oddEntries
	}
	if len(evenEntries) > 0 && len(oddEntries) == 0 {
		oddEntries = evenEntries
	}

	weeks := make(map[weekParity]models.Lesson, 2)
	if len(oddEntries) > 0 {
		weeks[weekOdd] = lessonFromLines(entryLines(oddEntries))
	}
	if len(evenEntries) > 0 {
		weeks[weekEven] = lessonFromLines(entryLines(evenEntries))
	}
	return weeks
}

func entryLines(entries []*goquery.Selection) []string {
	var lines []string
	for _, entry := range entries {
		lines = append(lines, strippedStrings(entry)...)
	}
	return lines
}
