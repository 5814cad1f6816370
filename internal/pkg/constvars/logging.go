package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingRedisKey          = "redis_key"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingSourceKey         = "source"
	LoggingWeekdayKey        = "weekday"
	LoggingInstantKey        = "instant"
	LoggingPolicyKey         = "policy"
	LoggingTeacherKey        = "teacher"
	LoggingChecksumKey       = "checksum"
	LoggingWarningsKey       = "warnings"
	LoggingPeriodKey         = "period"
	LoggingResponseLengthKey = "response_length"
	LoggingEventKey          = "event"
	LoggingSecurityEventKey  = "security_event"
	LoggingSeverityKey       = "severity"

	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
