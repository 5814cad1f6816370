package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeRange(t *testing.T) {
	t.Run("Valid Range", func(t *testing.T) {
		r, ok := ParseTimeRange("8:00 AM TO 8:45 AM")
		assert.True(t, ok)
		assert.Equal(t, 480, r.Start)
		assert.Equal(t, 525, r.End)
		assert.Equal(t, "8:00 AM TO 8:45 AM", r.Raw)
	})

	t.Run("Missing Separator", func(t *testing.T) {
		_, ok := ParseTimeRange("8:00 AM - 8:45 AM")
		assert.False(t, ok, "a range without TO should not parse")
	})

	t.Run("Lower Case Separator", func(t *testing.T) {
		_, ok := ParseTimeRange("8:00 AM to 8:45 AM")
		assert.False(t, ok, "the separator is case sensitive")
	})

	t.Run("Bad Endpoint", func(t *testing.T) {
		_, ok := ParseTimeRange("8:00 AM TO later")
		assert.False(t, ok, "an unparseable end should fail the range")
	})
}

func TestFindActive(t *testing.T) {
	entries := []Ranged[string]{{Time: "8:00 AM TO 8:45 AM", Value: "first"}}

	t.Run("Start Is Inclusive", func(t *testing.T) {
		got, ok := FindActive(480, entries)
		assert.True(t, ok)
		assert.Equal(t, "first", got)
	})

	t.Run("End Is Inclusive", func(t *testing.T) {
		got, ok := FindActive(525, entries)
		assert.True(t, ok, "8:45 AM should match a range ending at 8:45 AM")
		assert.Equal(t, "first", got)
	})

	t.Run("One Minute After End", func(t *testing.T) {
		got, ok := FindActive(526, entries)
		assert.False(t, ok, "8:46 AM should not match")
		assert.Empty(t, got)
	})

	t.Run("First Match Wins", func(t *testing.T) {
		overlapping := []Ranged[string]{
			{Time: "8:00 AM TO 9:00 AM", Value: "wide"},
			{Time: "8:30 AM TO 8:45 AM", Value: "narrow"},
		}
		got, ok := FindActive(515, overlapping)
		assert.True(t, ok)
		assert.Equal(t, "wide", got, "overlaps resolve to the earliest entry")
	})

	t.Run("Unparseable Entries Never Match", func(t *testing.T) {
		broken := []Ranged[string]{
			{Time: "whenever", Value: "broken"},
			{Time: "8:00 AM TO 8:45 AM", Value: "valid"},
		}
		got, ok := FindActive(500, broken)
		assert.True(t, ok)
		assert.Equal(t, "valid", got)
	})

	t.Run("Empty Sequence", func(t *testing.T) {
		_, ok := FindActive[string](500, nil)
		assert.False(t, ok)
	})

	t.Run("Inclusive Bounds Property", func(t *testing.T) {
		r, ok := ParseTimeRange("10:10 AM TO 11:20 AM")
		assert.True(t, ok)
		for instant := r.Start - 5; instant <= r.End+5; instant++ {
			_, matched := FindActive(instant, []Ranged[int]{{Time: r.Raw, Value: 1}})
			assert.Equal(t, r.Start <= instant && instant <= r.End, matched, "instant %d", instant)
		}
	})
}
