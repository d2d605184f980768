package parser

import "strings"

// dayOrder is the canonical Monday..Sunday sequence used by the source
// institution's exports.
var dayOrder = []string{
	"Даваа",
	"Мягмар",
	"Лхагва",
	"Пүрэв",
	"Баасан",
	"Бямба",
	"Ням",
}

// dayAliases maps lowercased header labels to canonical day names. Exports
// are hand-edited upstream and show up with both local and English labels.
var dayAliases = map[string]string{
	"даваа":     "Даваа",
	"mon":       "Даваа",
	"monday":    "Даваа",
	"мягмар":    "Мягмар",
	"tue":       "Мягмар",
	"tuesday":   "Мягмар",
	"лхагва":    "Лхагва",
	"wed":       "Лхагва",
	"wednesday": "Лхагва",
	"пүрэв":     "Пүрэв",
	"thu":       "Пүрэв",
	"thur":      "Пүрэв",
	"thursday":  "Пүрэв",
	"баасан":    "Баасан",
	"fri":       "Баасан",
	"friday":    "Баасан",
	"бямба":     "Бямба",
	"sat":       "Бямба",
	"saturday":  "Бямба",
	"ням":       "Ням",
	"sun":       "Ням",
	"sunday":    "Ням",
}

// normalizeDayLabel resolves a header label to its canonical day name.
// Unrecognized labels are kept as-is so unusual columns still render;
// an empty label means the column carries no day at all.
func normalizeDayLabel(label string) string {
	cleaned := strings.ToLower(normalizeText(label))
	if cleaned == "" {
		return ""
	}
	if canonical, ok := dayAliases[cleaned]; ok {
		return canonical
	}
	return strings.TrimSpace(label)
}

// dayOrderIndex returns the canonical position of a day name, or -1 when the
// name is not one of the known days.
func dayOrderIndex(day string) int {
	for i, name := range dayOrder {
		if name == day {
			return i
		}
	}
	return -1
}
