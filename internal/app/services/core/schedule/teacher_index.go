package schedule

import (
	"fmt"
	"sort"

	"timetable-service/internal/app/models"
)

// ListTeachers returns every distinct co-teacher name of the weekday's regular
// periods in first-seen order. Locations and classes are walked in document
// order, then any undeclared keys alphabetically.
func ListTeachers(doc *models.TimetableDocument, weekday string) []string {
	teachers := make([]string, 0)
	seen := make(map[string]struct{})

	locationNames := make([]string, 0, len(doc.LocationOrder()))
	for _, location := range doc.LocationOrder() {
		locationNames = append(locationNames, location.Name)
	}

	for _, period := range doc.DayTrack(weekday) {
		if !period.IsRegular() {
			continue
		}
		for _, location := range orderedKeys(period.Subjects, locationNames) {
			byClass := period.Subjects[location]
			for _, className := range orderedKeys(byClass, doc.ClassOrder()) {
				for _, teacher := range byClass[className].Teachers() {
					if _, ok := seen[teacher]; ok {
						continue
					}
					seen[teacher] = struct{}{}
					teachers = append(teachers, teacher)
				}
			}
		}
	}
	return teachers
}

// AgendaFor lists the teacher's periods on weekday ordered by period, then
// class, then location. A teacher sharing a period across two locations gets
// two entries.
func AgendaFor(doc *models.TimetableDocument, weekday, teacher string) []models.AgendaEntry {
	entries := make([]models.AgendaEntry, 0)
	if teacher == "" {
		return entries
	}

	for _, period := range doc.DayTrack(weekday) {
		if !period.IsRegular() {
			continue
		}
		for _, className := range doc.ClassOrder() {
			for _, location := range doc.LocationOrder() {
				assignment, ok := period.Subjects.Lookup(location.Name, className)
				if !ok || !assignment.HasTeacher(teacher) {
					continue
				}
				entries = append(entries, models.AgendaEntry{
					Time:    period.Time,
					Class:   fmt.Sprintf("%s (%s)", className, location.Abbreviation),
					Subject: assignment.Subject,
				})
			}
		}
	}
	return entries
}

// orderedKeys returns the keys of m present in preferred, in that order,
// followed by the remaining keys sorted.
func orderedKeys[V any](m map[string]V, preferred []string) []string {
	keys := make([]string, 0, len(m))
	used := make(map[string]struct{}, len(m))
	for _, key := range preferred {
		if _, ok := m[key]; !ok {
			continue
		}
		if _, dup := used[key]; dup {
			continue
		}
		keys = append(keys, key)
		used[key] = struct{}{}
	}

	rest := make([]string, 0, len(m)-len(keys))
	for key := range m {
		if _, ok := used[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
