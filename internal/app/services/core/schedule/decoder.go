package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"time"

	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// DecodeDocument validates raw timetable JSON and builds an immutable
// document. Entries whose time range does not parse are kept and reported as
// warnings; they simply never match.
func DecodeDocument(body []byte, source string, loadedAt time.Time) (*models.TimetableDocument, []string, error) {
	var payload requests.TimetablePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, exceptions.ErrTimetableDecode(err, source)
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return nil, nil, exceptions.ErrTimetableValidation(err)
	}

	weekdays := make([]string, 0, len(payload.Schedule))
	for weekday := range payload.Schedule {
		weekdays = append(weekdays, weekday)
	}
	sort.Strings(weekdays)
	for _, weekday := range weekdays {
		if err := utils.ValidateStruct(payload.Schedule[weekday]); err != nil {
			return nil, nil, exceptions.ErrTimetableDayValidation(err, weekday)
		}
	}

	if len(payload.Schedule) == 0 && len(payload.CommonRoutine) == 0 {
		return nil, nil, exceptions.ErrTimetableEmpty(errors.New("document has no schedule days and no common routine"))
	}

	sum := sha256.Sum256(body)
	doc := &models.TimetableDocument{
		Schedule:      make(map[string]models.DaySchedule, len(payload.Schedule)),
		CommonRoutine: make([]models.Period, 0, len(payload.CommonRoutine)),
		Locations:     models.DefaultLocations,
		Classes:       models.DefaultClasses,
		Checksum:      hex.EncodeToString(sum[:]),
		LoadedAt:      loadedAt,
		Source:        source,
	}

	if len(payload.Locations) > 0 {
		doc.Locations = make([]models.Location, 0, len(payload.Locations))
		for _, location := range payload.Locations {
			doc.Locations = append(doc.Locations, models.Location{Name: location.Name, Abbreviation: location.Abbreviation})
		}
	}
	if len(payload.Classes) > 0 {
		doc.Classes = append([]string(nil), payload.Classes...)
	}

	var warnings []string
	for weekday, day := range payload.Schedule {
		periods := make([]models.Period, 0, len(day.Classes))
		for i, raw := range day.Classes {
			periods = append(periods, periodFromPayload(raw, false))
			if _, ok := ParseTimeRange(raw.Time); !ok {
				warnings = append(warnings, fmt.Sprintf("schedule.%s.classes[%d]: time %q does not parse", weekday, i, raw.Time))
			}
		}
		doc.Schedule[weekday] = models.DaySchedule{Classes: periods}
	}

	for i, raw := range payload.CommonRoutine {
		doc.CommonRoutine = append(doc.CommonRoutine, periodFromPayload(raw, true))
		if _, ok := ParseTimeRange(raw.Time); !ok {
			warnings = append(warnings, fmt.Sprintf("commonRoutine[%d]: time %q does not parse", i, raw.Time))
		}
	}

	sort.Strings(warnings)
	return doc, warnings, nil
}

// periodFromPayload classifies a raw entry: break, then remedial, then
// subjects, then activity. A routine entry with none of them is a plain common
// routine block.
func periodFromPayload(raw requests.PeriodPayload, routine bool) models.Period {
	var period models.Period
	switch {
	case raw.Break != "":
		period = models.NewBreakPeriod(raw.Time, raw.Break)
	case raw.Remedial != "":
		period = models.NewRemedialPeriod(raw.Time, raw.Remedial)
	case len(raw.Subjects) > 0:
		period = models.NewRegularPeriod(raw.Time, assignmentsFromPayload(raw.Subjects))
	case raw.Activity != "":
		period = models.NewActivityPeriod(raw.Time, raw.Activity)
	case routine:
		period = models.NewCommonRoutinePeriod(raw.Time)
	default:
		period = models.NewRegularPeriod(raw.Time, models.Assignments{})
	}

	period.Break = raw.Break
	period.Remedial = raw.Remedial
	period.Activity = raw.Activity
	return period
}

func assignmentsFromPayload(raw map[string]map[string]requests.SubjectAssignmentPayload) models.Assignments {
	out := make(models.Assignments, len(raw))
	for location, byClass := range raw {
		classes := make(map[string]models.SubjectAssignment, len(byClass))
		for className, assignment := range byClass {
			classes[className] = models.SubjectAssignment{Subject: assignment.Subject, Teacher: assignment.Teacher}
		}
		out[location] = classes
	}
	return out
}
