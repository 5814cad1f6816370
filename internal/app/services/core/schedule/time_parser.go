package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var timeTokenPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)?`)

// ParseTime converts a token such as "9:05 AM" or "14:45" into minutes since
// midnight. Without an AM/PM marker the hour is read as 24-hour time. Hour and
// minute are not range checked.
func ParseTime(token string) (int, bool) {
	match := timeTokenPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, false
	}

	switch strings.ToUpper(match[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour*minutesPerHour + minute, true
}

// MinutesOf returns the minutes since midnight of t's wall clock.
func MinutesOf(t time.Time) int {
	return t.Hour()*minutesPerHour + t.Minute()
}

// FormatMinutes renders minutes since midnight as "H:MM AM".
func FormatMinutes(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour, minute := minutes/minutesPerHour, minutes%minutesPerHour
	marker := "AM"
	if hour >= 12 {
		marker = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, marker)
}

// FormatClock renders t as a 12-hour clock with seconds, e.g. "09:05:07 AM".
func FormatClock(t time.Time) string {
	return t.Format("03:04:05 PM")
}
