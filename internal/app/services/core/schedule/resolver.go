package schedule

import (
	"fmt"
	"strings"

	"timetable-service/internal/app/models"
)

// MergePolicy selects how the day track and the common-routine track are
// combined.
type MergePolicy string

const (
	// PolicyMerged appends the tagged routine entries to the day track and
	// matches the combined list once.
	PolicyMerged MergePolicy = "merged"
	// PolicyParallel matches both tracks independently.
	PolicyParallel MergePolicy = "parallel"
)

const DefaultPolicy = PolicyMerged

// ParseMergePolicy maps a case-insensitive name to a policy. Empty input
// yields fallback.
func ParseMergePolicy(raw string, fallback MergePolicy) (MergePolicy, error) {
	switch MergePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return fallback, nil
	case PolicyMerged:
		return PolicyMerged, nil
	case PolicyParallel:
		return PolicyParallel, nil
	}
	return "", fmt.Errorf("unknown merge policy %q", raw)
}

// Resolve finds what is running at instant on weekday. An unknown weekday or a
// missing routine track resolve to nothing; the document is never modified.
func Resolve(doc *models.TimetableDocument, weekday string, instant int, policy MergePolicy) models.Resolution {
	day := doc.DayTrack(weekday)
	routine := doc.RoutineTrack()

	if policy == PolicyParallel {
		res := models.Resolution{Policy: string(PolicyParallel)}
		if p, ok := FindActive(instant, rangedPeriods(day)); ok {
			res.Active = &p
		}
		if p, ok := FindActive(instant, taggedPeriods(routine)); ok {
			res.Routine = &p
		}
		return res
	}

	merged := append(rangedPeriods(day), taggedPeriods(routine)...)
	res := models.Resolution{Policy: string(PolicyMerged)}
	if p, ok := FindActive(instant, merged); ok {
		res.Active = &p
	}
	return res
}
