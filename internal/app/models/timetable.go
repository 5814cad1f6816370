package models

import (
	"sort"
	"strings"
	"time"
)

// PeriodKind tags which variant a Period holds.
type PeriodKind string

const (
	PeriodKindRegular       PeriodKind = "regular"
	PeriodKindBreak         PeriodKind = "break"
	PeriodKindRemedial      PeriodKind = "remedial"
	PeriodKindCommonRoutine PeriodKind = "common_routine"
	PeriodKindActivity      PeriodKind = "activity"
)

// TeacherSeparator joins co-teachers sharing one assignment.
const TeacherSeparator = "/"

// DefaultCommonRoutineLabel is shown for a common-routine entry without any label.
const DefaultCommonRoutineLabel = "Common Routine"

type SubjectAssignment struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

// Teachers splits the teacher field into the set of co-teachers. Empty
// fragments are dropped, no trimming is applied.
func (a SubjectAssignment) Teachers() []string {
	if a.Teacher == "" {
		return nil
	}
	parts := strings.Split(a.Teacher, TeacherSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a SubjectAssignment) HasTeacher(name string) bool {
	for _, t := range a.Teachers() {
		if t == name {
			return true
		}
	}
	return false
}

// Assignments maps location name to class name to assignment.
type Assignments map[string]map[string]SubjectAssignment

func (a Assignments) Lookup(location, className string) (SubjectAssignment, bool) {
	byClass, ok := a[location]
	if !ok {
		return SubjectAssignment{}, false
	}
	assignment, ok := byClass[className]
	return assignment, ok
}

// Period is one time block of a track. Only regular periods carry
// assignments; the label fields keep whatever the document declared so the
// display priority (break, remedial, activity) can be applied as written.
type Period struct {
	Kind            PeriodKind  `json:"kind"`
	Time            string      `json:"time"`
	Break           string      `json:"break,omitempty"`
	Remedial        string      `json:"remedial,omitempty"`
	Activity        string      `json:"activity,omitempty"`
	Subjects        Assignments `json:"subjects,omitempty"`
	IsCommonRoutine bool        `json:"isCommonRoutine,omitempty"`
}

func NewRegularPeriod(timeRange string, subjects Assignments) Period {
	return Period{Kind: PeriodKindRegular, Time: timeRange, Subjects: subjects}
}

func NewBreakPeriod(timeRange, label string) Period {
	return Period{Kind: PeriodKindBreak, Time: timeRange, Break: label}
}

func NewRemedialPeriod(timeRange, label string) Period {
	return Period{Kind: PeriodKindRemedial, Time: timeRange, Remedial: label}
}

func NewActivityPeriod(timeRange, label string) Period {
	return Period{Kind: PeriodKindActivity, Time: timeRange, Activity: label}
}

func NewCommonRoutinePeriod(timeRange string) Period {
	return Period{Kind: PeriodKindCommonRoutine, Time: timeRange, IsCommonRoutine: true}
}

// Tagged returns a copy flagged as coming from the common-routine track.
func (p Period) Tagged() Period {
	p.IsCommonRoutine = true
	return p
}

func (p Period) IsRegular() bool {
	return p.Kind == PeriodKindRegular
}

// Label is the text shown across every class row for a non-regular period.
// Regular periods have no label.
func (p Period) Label() string {
	switch {
	case p.Break != "":
		return p.Break
	case p.Remedial != "":
		return p.Remedial
	case p.IsCommonRoutine:
		if p.Activity != "" {
			return p.Activity
		}
		return DefaultCommonRoutineLabel
	case p.Activity != "":
		return p.Activity
	}
	return ""
}

type DaySchedule struct {
	Classes []Period `json:"classes"`
}

type Location struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

var DefaultLocations = []Location{
	{Name: "Vincent Hill", Abbreviation: "VH"},
	{Name: "Shangri-la", Abbreviation: "SH"},
}

var DefaultClasses = []string{"KG", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// TimetableDocument is an immutable snapshot. A refresh builds a new value and
// swaps it in; nothing edits a document after it is built.
type TimetableDocument struct {
	Schedule      map[string]DaySchedule `json:"schedule"`
	CommonRoutine []Period               `json:"commonRoutine"`
	Locations     []Location             `json:"locations"`
	Classes       []string               `json:"classes"`
	Checksum      string                 `json:"checksum"`
	LoadedAt      time.Time              `json:"loadedAt"`
	Source        string                 `json:"source"`
}

// DayTrack returns the weekday's periods, empty when the weekday is unknown.
func (d *TimetableDocument) DayTrack(weekday string) []Period {
	if d == nil {
		return nil
	}
	return d.Schedule[weekday].Classes
}

func (d *TimetableDocument) RoutineTrack() []Period {
	if d == nil {
		return nil
	}
	return d.CommonRoutine
}

// ClassOrder is the grade list used for rows, falling back to DefaultClasses.
func (d *TimetableDocument) ClassOrder() []string {
	if d == nil || len(d.Classes) == 0 {
		return DefaultClasses
	}
	return d.Classes
}

func (d *TimetableDocument) LocationOrder() []Location {
	if d == nil || len(d.Locations) == 0 {
		return DefaultLocations
	}
	return d.Locations
}

// Weekdays lists the document's weekday keys, calendar order first
// (Monday to Sunday) and any other keys sorted after them.
func (d *TimetableDocument) Weekdays() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.Schedule))
	seen := make(map[string]struct{}, len(d.Schedule))
	for _, wd := range calendarOrder {
		if _, ok := d.Schedule[wd]; ok {
			out = append(out, wd)
			seen[wd] = struct{}{}
		}
	}
	var rest []string
	for wd := range d.Schedule {
		if _, ok := seen[wd]; !ok {
			rest = append(rest, wd)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

var calendarOrder = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}
