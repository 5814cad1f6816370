package constvars

const (
	ResponseUnknown = "unknown"

	GetCurrentSlotSuccessMessage   = "get current slot successfully"
	GetDayScheduleSuccessMessage   = "get day schedule successfully"
	GetTeachersSuccessMessage      = "get teachers successfully"
	GetTeacherAgendaSuccessMessage = "get teacher agenda successfully"
	GetTeacherWeekSuccessMessage   = "get teacher weekly agenda successfully"
	GetClockSuccessMessage         = "get clock successfully"
	ReloadTimetableSuccessMessage  = "timetable reloaded successfully"
	HealthCheckSuccessMessage      = "ok"
)
