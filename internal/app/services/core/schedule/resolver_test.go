package schedule

import (
	"testing"

	"timetable-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMergePolicy(t *testing.T) {
	t.Run("Empty Uses Fallback", func(t *testing.T) {
		policy, err := ParseMergePolicy("", PolicyParallel)
		require.NoError(t, err)
		assert.Equal(t, PolicyParallel, policy)
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		policy, err := ParseMergePolicy(" Parallel ", PolicyMerged)
		require.NoError(t, err)
		assert.Equal(t, PolicyParallel, policy)
	})

	t.Run("Unknown Policy", func(t *testing.T) {
		_, err := ParseMergePolicy("interleaved", PolicyMerged)
		assert.Error(t, err)
	})
}

func TestResolve_Merged(t *testing.T) {
	doc := newMondayDocument()

	t.Run("Day Track Wins On Overlap", func(t *testing.T) {
		res := Resolve(doc, "Monday", 585, PolicyMerged)
		require.NotNil(t, res.Active)
		assert.Equal(t, "9:00 AM TO 9:45 AM", res.Active.Time)
		assert.Nil(t, res.Routine, "merged never fills the routine slot")
		assert.Equal(t, string(PolicyMerged), res.Policy)
	})

	t.Run("Routine Fills The Gap", func(t *testing.T) {
		res := Resolve(doc, "Monday", 600, PolicyMerged)
		require.NotNil(t, res.Active)
		assert.Equal(t, "Assembly", res.Active.Activity)
		assert.True(t, res.Active.IsCommonRoutine, "routine matches are tagged")
	})

	t.Run("Break Boundary", func(t *testing.T) {
		res := Resolve(doc, "Monday", 525, PolicyMerged)
		require.NotNil(t, res.Active)
		assert.Equal(t, models.PeriodKindRegular, res.Active.Kind, "8:45 belongs to the period ending at 8:45")

		res = Resolve(doc, "Monday", 526, PolicyMerged)
		require.NotNil(t, res.Active)
		assert.Equal(t, models.PeriodKindBreak, res.Active.Kind)
	})

	t.Run("Nothing Running", func(t *testing.T) {
		res := Resolve(doc, "Monday", 420, PolicyMerged)
		assert.True(t, res.IsEmpty())
	})

	t.Run("Unknown Weekday Still Sees Routine", func(t *testing.T) {
		res := Resolve(doc, "Sunday", 600, PolicyMerged)
		require.NotNil(t, res.Active)
		assert.True(t, res.Active.IsCommonRoutine)

		res = Resolve(doc, "Sunday", 540, PolicyMerged)
		assert.True(t, res.IsEmpty(), "no day track means no regular period")
	})
}

func TestResolve_Parallel(t *testing.T) {
	doc := newMondayDocument()

	t.Run("Both Tracks Match", func(t *testing.T) {
		res := Resolve(doc, "Monday", 585, PolicyParallel)
		require.NotNil(t, res.Active)
		require.NotNil(t, res.Routine)
		assert.Equal(t, "9:00 AM TO 9:45 AM", res.Active.Time)
		assert.Equal(t, "Assembly", res.Routine.Activity)
		assert.True(t, res.Routine.IsCommonRoutine)
		assert.False(t, res.Active.IsCommonRoutine)
	})

	t.Run("Only Routine Matches", func(t *testing.T) {
		res := Resolve(doc, "Monday", 735, PolicyParallel)
		assert.Nil(t, res.Active)
		require.NotNil(t, res.Routine)
		assert.Equal(t, models.PeriodKindCommonRoutine, res.Routine.Kind)
	})

	t.Run("Missing Routine Track", func(t *testing.T) {
		noRoutine := newMondayDocument()
		noRoutine.CommonRoutine = nil

		res := Resolve(noRoutine, "Monday", 500, PolicyParallel)
		require.NotNil(t, res.Active)
		assert.Nil(t, res.Routine)
	})
}

func TestResolve_Properties(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		doc := newMondayDocument()
		for _, policy := range []MergePolicy{PolicyMerged, PolicyParallel} {
			for instant := 420; instant <= 780; instant += 5 {
				first := Resolve(doc, "Monday", instant, policy)
				second := Resolve(doc, "Monday", instant, policy)
				assert.Equal(t, first, second, "policy %s instant %d", policy, instant)
			}
		}
	})

	t.Run("Does Not Modify Document", func(t *testing.T) {
		doc := newMondayDocument()
		before := newMondayDocument()

		Resolve(doc, "Monday", 600, PolicyMerged)
		Resolve(doc, "Monday", 585, PolicyParallel)

		assert.Equal(t, before, doc, "resolution must leave the snapshot untouched")
		assert.False(t, doc.CommonRoutine[0].IsCommonRoutine, "routine entries are tagged on copies only")
	})

	t.Run("Nil Document", func(t *testing.T) {
		res := Resolve(nil, "Monday", 500, PolicyMerged)
		assert.True(t, res.IsEmpty())
	})
}
