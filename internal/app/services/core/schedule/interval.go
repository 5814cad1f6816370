package schedule

import (
	"strings"

	"timetable-service/internal/app/models"
)

// RangeSeparator splits the start and end tokens of a raw time range.
const RangeSeparator = " TO "

// TimeRange is an inclusive interval in minutes since midnight. Ranges never
// wrap past midnight.
type TimeRange struct {
	Start int
	End   int
	Raw   string
}

func (r TimeRange) Contains(instant int) bool {
	return r.Start <= instant && instant <= r.End
}

// ParseTimeRange parses "8:00 AM TO 8:45 AM". It fails when the separator is
// missing or either endpoint does not parse.
func ParseTimeRange(raw string) (TimeRange, bool) {
	if !strings.Contains(raw, RangeSeparator) {
		return TimeRange{}, false
	}
	parts := strings.Split(raw, RangeSeparator)

	start, ok := ParseTime(strings.TrimSpace(parts[0]))
	if !ok {
		return TimeRange{}, false
	}
	end, ok := ParseTime(strings.TrimSpace(parts[1]))
	if !ok {
		return TimeRange{}, false
	}

	return TimeRange{Start: start, End: end, Raw: raw}, true
}

// Ranged pairs a raw time range with the value it schedules.
type Ranged[T any] struct {
	Time  string
	Value T
}

// FindActive returns the first entry whose range contains instant. Entries
// with an unparseable range never match.
func FindActive[T any](instant int, entries []Ranged[T]) (T, bool) {
	for _, entry := range entries {
		r, ok := ParseTimeRange(entry.Time)
		if !ok {
			continue
		}
		if r.Contains(instant) {
			return entry.Value, true
		}
	}
	var zero T
	return zero, false
}

func rangedPeriods(periods []models.Period) []Ranged[models.Period] {
	out := make([]Ranged[models.Period], 0, len(periods))
	for _, p := range periods {
		out = append(out, Ranged[models.Period]{Time: p.Time, Value: p})
	}
	return out
}

func taggedPeriods(periods []models.Period) []Ranged[models.Period] {
	out := make([]Ranged[models.Period], 0, len(periods))
	for _, p := range periods {
		out = append(out, Ranged[models.Period]{Time: p.Time, Value: p.Tagged()})
	}
	return out
}
