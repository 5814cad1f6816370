package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
	"gt":       "must be greater than %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientTimetableNotLoaded            = "timetable is not available yet, please try again shortly"
	ErrClientInvalidTime                   = "time must look like 9:05 AM or 14:45"
	ErrClientInvalidPolicy                 = "policy must be one of [merged, parallel]"
	ErrClientInvalidTimetable              = "timetable document is invalid"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus   = "unexpected HTTP status %d from %s"
	ErrDevInvalidAPIKey          = "invalid API key"
	ErrDevAPIKeyRequired         = "API key is required"
	ErrDevRateLimited            = "rate limit exceeded"

	// Timetable messages
	ErrDevTimetableNotLoaded     = "timetable snapshot not loaded"
	ErrDevTimetableDecode        = "failed to decode timetable document from %s"
	ErrDevTimetableValidation    = "timetable document failed validation"
	ErrDevTimetableDayValidation = "timetable schedule.%s failed validation"
	ErrDevTimetableEmpty         = "timetable document is empty"
	ErrDevTimetableInvalidTime   = "cannot parse time token %q"
	ErrDevTimetableInvalidPolicy = "unknown merge policy %q"
	ErrDevTimetableUnknownSource = "unknown timetable source %q"
	ErrDevTimetableReadFile      = "failed to read timetable file %s"
	ErrDevTimetableCacheMissing  = "no last-good timetable cached in redis"

	// Minio messages
	ErrDevMinioFailedToGetObject  = "failed to get object %s from bucket %s"
	ErrDevMinioFailedToStatObject = "failed to stat object %s from bucket %s"

	// Redis messages
	ErrDevRedisGetNoData = "failed to get data from redis with key %s"
	ErrDevRedisSetData   = "failed to set data into redis"
	ErrDevRedisDelete    = "failed to delete data from redis"
	ErrDevRedisUnlock    = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQDeclareQueue   = "failed to declare queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
)
