package utils

import (
	"context"
	"time"
	"timetable-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation times fn and logs its outcome under operation. The error from
// fn is returned untouched.
func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	}
	logger.Debug("Operation started", fields...)

	start := time.Now()
	err := fn()
	fields = append(fields,
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)

	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", fields...)
	return nil
}

// LogTimetableEvent records a domain event such as a period change.
func LogTimetableEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	logger.Info("Timetable event",
		append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
		}, fields...)...,
	)
}

// LogSecurityEvent records a rejected admin call at warn level.
func LogSecurityEvent(logger *zap.Logger, event string, requestID string, severity string, fields ...zap.Field) {
	logger.Warn("Security event detected",
		append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSecurityEventKey, event),
			zap.String(constvars.LoggingSeverityKey, severity),
		}, fields...)...,
	)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// WithRequestID returns ctx carrying requestID under the request id key.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}
