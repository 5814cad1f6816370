package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Document sources selectable through TIMETABLE_SOURCE.
const (
	TimetableSourceFile  = "file"
	TimetableSourceHTTP  = "http"
	TimetableSourceMinio = "minio"
)

const (
	RedisKeyTimetableLastGood   = "timetable:last-good"
	RedisKeyTimetableLastPeriod = "timetable:last-period"
	RedisKeySlotPublisherLock   = "timetable:slot-publisher"
)

const (
	EventTypePeriodChanged = "period.changed"
)

// NoActiveSlotMessage is shown in place of the slot time when nothing is running.
const NoActiveSlotMessage = "No active slot"
