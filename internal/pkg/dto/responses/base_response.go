package responses

// ResponseDTO wraps every successful body. Version carries the entity tag
// of cacheable timetable views so polling clients can compare without
// reading headers.
type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Version string      `json:"version,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
