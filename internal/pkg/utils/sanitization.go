package utils

import (
	"strings"
	"timetable-service/internal/pkg/dto/requests"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var weekdayCaser = cases.Title(language.English)

// NormalizeWeekday turns "  monday " or "MONDAY" into "Monday". Empty input
// stays empty.
func NormalizeWeekday(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	return weekdayCaser.String(strings.ToLower(trimmed))
}

func SanitizeCurrentSlotQuery(input *requests.CurrentSlotQuery) {
	input.Day = NormalizeWeekday(input.Day)
	input.Time = strings.TrimSpace(input.Time)
	input.Policy = strings.ToLower(strings.TrimSpace(input.Policy))
}

func SanitizeDayQuery(input *requests.DayQuery) {
	input.Day = NormalizeWeekday(input.Day)
}

func SanitizeTeacherAgendaQuery(input *requests.TeacherAgendaQuery) {
	input.Day = NormalizeWeekday(input.Day)
	input.Teacher = strings.TrimSpace(input.Teacher)
}
