package models

// Lesson is a single timetable cell entry. When viewing a class the
// Counterpart is the teacher, when viewing a teacher it is the class.
type Lesson struct {
	Subject     string   `json:"subject"`
	Counterpart string   `json:"counterpart"`
	Room        string   `json:"room"`
	Extra       []string `json:"extra,omitempty"`
}

// IsEmpty reports whether the cell holds no lesson (a free slot).
func (l Lesson) IsEmpty() bool {
	return l.Subject == "" && l.Counterpart == "" && l.Room == "" && len(l.Extra) == 0
}

// Grid is a weekly lesson matrix indexed [period][day].
type Grid [][]Lesson

// Cell returns the lesson at the given period/day position, or an empty
// lesson when the grid is ragged and the position does not exist.
func (g Grid) Cell(period, day int) Lesson {
	if period < 0 || period >= len(g) {
		return Lesson{}
	}
	row := g[period]
	if day < 0 || day >= len(row) {
		return Lesson{}
	}
	return row[day]
}

// Schedule holds the two rotating weekly grids of one entity.
type Schedule struct {
	Odd  Grid `json:"oddWeek"`
	Even Grid `json:"evenWeek"`
}

// Document is the parsed content of one EduPage export file: the day and
// period labels shared by its tables plus a schedule per section heading.
type Document struct {
	Days      []string
	Periods   []string
	Names     []string
	Schedules map[string]*Schedule
}
