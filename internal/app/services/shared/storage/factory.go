package storage

import (
	"fmt"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// NewDocumentSource builds the source named by TIMETABLE_SOURCE. minioClient
// is only required for the minio source.
func NewDocumentSource(cfg *config.InternalConfig, minioClient *minio.Client, logger *zap.Logger) (contracts.DocumentSource, error) {
	timetable := cfg.Timetable
	switch timetable.Source {
	case constvars.TimetableSourceFile:
		return NewFileSource(timetable.FilePath, logger), nil
	case constvars.TimetableSourceHTTP:
		if timetable.URL == "" {
			return nil, exceptions.ErrTimetableUnknownSource(fmt.Errorf("TIMETABLE_URL is empty"), timetable.Source)
		}
		timeout := time.Duration(timetable.HTTPTimeoutInSeconds) * time.Second
		return NewHTTPSource(timetable.URL, timeout, logger), nil
	case constvars.TimetableSourceMinio:
		if minioClient == nil {
			return nil, exceptions.ErrTimetableUnknownSource(fmt.Errorf("minio client is not configured"), timetable.Source)
		}
		return NewMinioSource(minioClient, timetable.MinioBucketName, timetable.MinioObjectName, logger), nil
	}
	return nil, exceptions.ErrTimetableUnknownSource(nil, timetable.Source)
}
