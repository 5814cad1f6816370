package responses

import (
	"time"

	"timetable-service/internal/app/models"
)

type CurrentSlot struct {
	Day            string            `json:"day"`
	Time           string            `json:"time"`
	Minutes        int               `json:"minutes"`
	Policy         string            `json:"policy"`
	Message        string            `json:"message,omitempty"`
	Active         *models.Period    `json:"active,omitempty"`
	Routine        *models.Period    `json:"routine,omitempty"`
	Display        *models.Display   `json:"display,omitempty"`
	RoutineDisplay *models.Display   `json:"routineDisplay,omitempty"`
	Document       *DocumentMetadata `json:"document,omitempty"`
}

type DocumentMetadata struct {
	Checksum string    `json:"checksum"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
}

type PeriodView struct {
	Period  models.Period  `json:"period"`
	Display models.Display `json:"display"`
}

// DaySchedule carries the checksum of the snapshot it was built from, so the
// entity tag always matches the data.
type DaySchedule struct {
	Day           string            `json:"day"`
	Checksum      string            `json:"checksum"`
	Classes       []string          `json:"classes"`
	Locations     []models.Location `json:"locations"`
	Periods       []PeriodView      `json:"periods"`
	CommonRoutine []PeriodView      `json:"commonRoutine"`
}

type TeacherList struct {
	Day      string   `json:"day"`
	Teachers []string `json:"teachers"`
}

type TeacherAgenda struct {
	Day     string               `json:"day"`
	Teacher string               `json:"teacher"`
	Entries []models.AgendaEntry `json:"entries"`
}

type TeacherWeek struct {
	Teacher string          `json:"teacher"`
	Days    []TeacherAgenda `json:"days"`
}

type Clock struct {
	Day      string    `json:"day"`
	Time     string    `json:"time"`
	Minutes  int       `json:"minutes"`
	Timezone string    `json:"timezone"`
	Now      time.Time `json:"now"`
}

type ReloadResult struct {
	Checksum string    `json:"checksum"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	Changed  bool      `json:"changed"`
	Warnings []string  `json:"warnings,omitempty"`
}

type Health struct {
	Status   string     `json:"status"`
	Loaded   bool       `json:"loaded"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"`
	Checksum string     `json:"checksum,omitempty"`
}
