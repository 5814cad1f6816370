package schedule

import (
	"timetable-service/internal/app/models"
)

const (
	vincentHill = "Vincent Hill"
	shangrila   = "Shangri-la"
)

// newMondayDocument builds a small document:
//
//	8:00-8:45  regular   English KG@VH (A/B), Math I@VH (B), Hindi KG@SH (A)
//	8:45-9:00  break     Short Break
//	9:00-9:45  regular   Science II@VH (C), Science II@SH (C)
//
// with a routine of Assembly 9:45-10:30 and a bare block 12:00-12:30.
func newMondayDocument() *models.TimetableDocument {
	return &models.TimetableDocument{
		Schedule: map[string]models.DaySchedule{
			"Monday": {Classes: []models.Period{
				models.NewRegularPeriod("8:00 AM TO 8:45 AM", models.Assignments{
					vincentHill: {
						"KG": {Subject: "English", Teacher: "A/B"},
						"I":  {Subject: "Math", Teacher: "B"},
					},
					shangrila: {
						"KG": {Subject: "Hindi", Teacher: "A"},
					},
				}),
				models.NewBreakPeriod("8:45 AM TO 9:00 AM", "Short Break"),
				models.NewRegularPeriod("9:00 AM TO 9:45 AM", models.Assignments{
					vincentHill: {"II": {Subject: "Science", Teacher: "C"}},
					shangrila:   {"II": {Subject: "Science", Teacher: "C"}},
				}),
			}},
		},
		CommonRoutine: []models.Period{
			models.NewActivityPeriod("9:45 AM TO 10:30 AM", "Assembly"),
			models.NewCommonRoutinePeriod("12:00 PM TO 12:30 PM"),
		},
		Locations: models.DefaultLocations,
		Classes:   []string{"KG", "I", "II"},
	}
}
