package schedule

import (
	"testing"

	"timetable-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDisplay(t *testing.T) {
	doc := newMondayDocument()
	classes, locations := doc.ClassOrder(), doc.LocationOrder()

	t.Run("Break Spans Every Row Regardless Of Subjects", func(t *testing.T) {
		lunch := models.Period{
			Kind:  models.PeriodKindRegular,
			Time:  "12:00 PM TO 12:30 PM",
			Break: "Lunch",
			Subjects: models.Assignments{
				vincentHill: {"KG": {Subject: "English", Teacher: "A"}},
			},
		}

		display := BuildDisplay(lunch, classes, locations)

		assert.True(t, display.Spanning)
		assert.Equal(t, "Lunch", display.Label)
		require.Len(t, display.Rows, len(classes))
		for i, row := range display.Rows {
			assert.Equal(t, classes[i], row.Class)
			assert.Equal(t, "Lunch", row.Span, "row %s should show the break label", row.Class)
			assert.Empty(t, row.Cells, "row %s should not render subject cells", row.Class)
		}
	})

	t.Run("Remedial Spans", func(t *testing.T) {
		display := BuildDisplay(models.NewRemedialPeriod("2:00 PM TO 2:45 PM", "Remedial Math"), classes, locations)
		assert.True(t, display.Spanning)
		assert.Equal(t, "Remedial Math", display.Rows[0].Span)
	})

	t.Run("Break Outranks Remedial", func(t *testing.T) {
		period := models.NewBreakPeriod("10:00 AM TO 10:15 AM", "Snack")
		period.Remedial = "Reading"
		display := BuildDisplay(period, classes, locations)
		assert.Equal(t, "Snack", display.Label)
	})

	t.Run("Bare Common Routine Uses Default Label", func(t *testing.T) {
		display := BuildDisplay(models.NewCommonRoutinePeriod("12:00 PM TO 12:30 PM"), classes, locations)
		assert.True(t, display.Spanning)
		assert.Equal(t, models.DefaultCommonRoutineLabel, display.Label)
	})

	t.Run("Tagged Activity Uses Activity Label", func(t *testing.T) {
		display := BuildDisplay(models.NewActivityPeriod("9:45 AM TO 10:30 AM", "Assembly").Tagged(), classes, locations)
		assert.True(t, display.Spanning)
		assert.Equal(t, "Assembly", display.Label)
	})

	t.Run("Untagged Activity Renders Grid", func(t *testing.T) {
		display := BuildDisplay(models.NewActivityPeriod("1:00 PM TO 1:45 PM", "Sports"), classes, locations)
		assert.False(t, display.Spanning)
		assert.Equal(t, "Sports", display.Label)
		for _, row := range display.Rows {
			for _, cell := range row.Cells {
				assert.Equal(t, EmptyCell, cell.Text)
			}
		}
	})

	t.Run("Regular Grid", func(t *testing.T) {
		display := BuildDisplay(doc.DayTrack("Monday")[0], classes, locations)

		assert.False(t, display.Spanning)
		require.Len(t, display.Rows, 3)

		kg := display.Rows[0]
		assert.Equal(t, "KG", kg.Class)
		assert.Equal(t, []models.DisplayCell{
			{Location: vincentHill, Text: "English (A/B)"},
			{Location: shangrila, Text: "Hindi (A)"},
		}, kg.Cells)

		one := display.Rows[1]
		assert.Equal(t, "Math (B)", one.Cells[0].Text)
		assert.Equal(t, EmptyCell, one.Cells[1].Text, "missing assignment renders as a dash")

		two := display.Rows[2]
		assert.Equal(t, EmptyCell, two.Cells[0].Text)
		assert.Equal(t, EmptyCell, two.Cells[1].Text)
	})

	t.Run("Empty Subject Renders Dash", func(t *testing.T) {
		period := models.NewRegularPeriod("8:00 AM TO 8:45 AM", models.Assignments{
			vincentHill: {"KG": {Subject: "", Teacher: "A"}},
		})
		display := BuildDisplay(period, []string{"KG"}, locations)
		assert.Equal(t, EmptyCell, display.Rows[0].Cells[0].Text)
	})
}
