package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   int
		wantOk bool
	}{
		{name: "Morning With Marker", token: "9:05 AM", want: 545, wantOk: true},
		{name: "Noon", token: "12:00 PM", want: 720, wantOk: true},
		{name: "Half Past Midnight", token: "12:30 AM", want: 30, wantOk: true},
		{name: "Twenty Four Hour", token: "14:45", want: 885, wantOk: true},
		{name: "Afternoon With Marker", token: "2:45 PM", want: 885, wantOk: true},
		{name: "Lower Case Marker", token: "3:15 pm", want: 915, wantOk: true},
		{name: "No Space Before Marker", token: "8:00AM", want: 480, wantOk: true},
		{name: "Surrounding Text", token: "starts 8:30 AM sharp", want: 510, wantOk: true},
		{name: "Garbage", token: "garbage", wantOk: false},
		{name: "Empty", token: "", wantOk: false},
		{name: "Missing Minutes", token: "9 AM", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.token)
			assert.Equal(t, tt.wantOk, ok, "parse success for %q", tt.token)
			if tt.wantOk {
				assert.Equal(t, tt.want, got, "minutes for %q", tt.token)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatMinutes(0))
	assert.Equal(t, "9:05 AM", FormatMinutes(545))
	assert.Equal(t, "12:00 PM", FormatMinutes(720))
	assert.Equal(t, "2:45 PM", FormatMinutes(885))
	assert.Equal(t, "11:59 PM", FormatMinutes(1439))
}

func TestFormatMinutes_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < minutesPerDay; minutes += 7 {
		got, ok := ParseTime(FormatMinutes(minutes))
		assert.True(t, ok, "formatted %d should parse", minutes)
		assert.Equal(t, minutes, got, "round trip of %d", minutes)
	}
}

func TestClockHelpers(t *testing.T) {
	instant := time.Date(2024, 5, 6, 9, 5, 7, 0, time.UTC)

	assert.Equal(t, 545, MinutesOf(instant))
	assert.Equal(t, "09:05:07 AM", FormatClock(instant))
	assert.Equal(t, "02:45:00 PM", FormatClock(time.Date(2024, 5, 6, 14, 45, 0, 0, time.UTC)))
}
