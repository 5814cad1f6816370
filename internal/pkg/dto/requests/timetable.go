package requests

// TimetablePayload is the timetable document as it arrives from a source.
// Either track may be missing. Map values are not walked by the validator, so
// each DaySchedulePayload is validated on its own by the decoder.
type TimetablePayload struct {
	Schedule      map[string]DaySchedulePayload `json:"schedule" validate:"omitempty,dive,keys,required,endkeys"`
	CommonRoutine []PeriodPayload               `json:"commonRoutine" validate:"omitempty,dive"`
	Locations     []LocationPayload             `json:"locations" validate:"omitempty,dive"`
	Classes       []string                      `json:"classes" validate:"omitempty,dive,required"`
}

type DaySchedulePayload struct {
	Classes []PeriodPayload `json:"classes" validate:"omitempty,dive"`
}

// PeriodPayload keeps every optional field of a raw entry. Classification into
// a period kind happens after validation.
type PeriodPayload struct {
	Time     string                                         `json:"time" validate:"required"`
	Break    string                                         `json:"break,omitempty"`
	Remedial string                                         `json:"remedial,omitempty"`
	Activity string                                         `json:"activity,omitempty"`
	Subjects map[string]map[string]SubjectAssignmentPayload `json:"subjects,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
}

type SubjectAssignmentPayload struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

type LocationPayload struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
}

// CurrentSlotQuery carries the optional overrides of GET /timetable/now.
type CurrentSlotQuery struct {
	Day    string `json:"day"`
	Time   string `json:"time"`
	Policy string `json:"policy"`
}

type DayQuery struct {
	Day string `json:"day"`
}

type TeacherAgendaQuery struct {
	Day     string `json:"day"`
	Teacher string `json:"teacher" validate:"required"`
}
