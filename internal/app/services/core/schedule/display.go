package schedule

import (
	"fmt"

	"timetable-service/internal/app/models"
)

// EmptyCell is shown for a class with no assignment at a location.
const EmptyCell = "-"

// BuildDisplay lays out one period as rows per class. Break, remedial and
// common-routine periods span every class with the same label; anything else
// is rendered as the subject grid.
func BuildDisplay(period models.Period, classes []string, locations []models.Location) models.Display {
	display := models.Display{
		Time: period.Time,
		Kind: period.Kind,
		Rows: make([]models.DisplayRow, 0, len(classes)),
	}

	if period.Break != "" || period.Remedial != "" || period.IsCommonRoutine {
		display.Spanning = true
		display.Label = period.Label()
		for _, className := range classes {
			display.Rows = append(display.Rows, models.DisplayRow{Class: className, Span: display.Label})
		}
		return display
	}

	display.Label = period.Activity
	for _, className := range classes {
		row := models.DisplayRow{Class: className, Cells: make([]models.DisplayCell, 0, len(locations))}
		for _, location := range locations {
			row.Cells = append(row.Cells, models.DisplayCell{
				Location: location.Name,
				Text:     cellText(period, location.Name, className),
			})
		}
		display.Rows = append(display.Rows, row)
	}
	return display
}

func cellText(period models.Period, location, className string) string {
	assignment, ok := period.Subjects.Lookup(location, className)
	if !ok || assignment.Subject == "" {
		return EmptyCell
	}
	return fmt.Sprintf("%s (%s)", assignment.Subject, assignment.Teacher)
}
