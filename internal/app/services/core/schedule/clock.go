package schedule

import (
	"time"
	"timetable-service/internal/app/contracts"
)

type systemClock struct {
	location *time.Location
}

// NewSystemClock reads the host clock in location. A nil location means the
// host's local zone.
func NewSystemClock(location *time.Location) contracts.Clock {
	if location == nil {
		location = time.Local
	}
	return &systemClock{location: location}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// LoadLocation resolves an IANA zone name, falling back to the host zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return location, nil
}
