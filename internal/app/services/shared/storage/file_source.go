package storage

import (
	"context"
	"os"
	"strconv"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type fileSource struct {
	path string
	Log  *zap.Logger
}

func NewFileSource(path string, logger *zap.Logger) contracts.DocumentSource {
	return &fileSource{path: path, Log: logger}
}

func (s *fileSource) Name() string {
	return constvars.TimetableSourceFile + ":" + s.path
}

// Fetch reads the whole file. The modification time in nanoseconds is used as
// the version.
func (s *fileSource) Fetch(ctx context.Context) (*contracts.RawDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("fileSource.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceKey, s.path),
	)

	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, exceptions.ErrTimetableReadFile(err, s.path)
	}

	body, err := os.ReadFile(s.path)
	if err != nil {
		return nil, exceptions.ErrTimetableReadFile(err, s.path)
	}

	return &contracts.RawDocument{
		Body:    body,
		Version: strconv.FormatInt(info.ModTime().UnixNano(), 10),
		Origin:  s.Name(),
	}, nil
}
