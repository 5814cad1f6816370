package storage

import (
	"context"
	"io"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioSource struct {
	MinioClient *minio.Client
	bucketName  string
	objectName  string
	Log         *zap.Logger
}

func NewMinioSource(minioClient *minio.Client, bucketName, objectName string, logger *zap.Logger) contracts.DocumentSource {
	return &minioSource{
		MinioClient: minioClient,
		bucketName:  bucketName,
		objectName:  objectName,
		Log:         logger,
	}
}

func (m *minioSource) Name() string {
	return constvars.TimetableSourceMinio + ":" + m.bucketName + "/" + m.objectName
}

// Fetch reads the object and reports its ETag as the version.
func (m *minioSource) Fetch(ctx context.Context) (*contracts.RawDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Debug("minioSource.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.bucketName),
		zap.String(constvars.LoggingObjectKey, m.objectName),
	)

	info, err := m.MinioClient.StatObject(ctx, m.bucketName, m.objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioStatObject(err, m.bucketName, m.objectName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.bucketName, m.objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.bucketName, m.objectName)
	}
	defer object.Close()

	body, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.bucketName, m.objectName)
	}

	return &contracts.RawDocument{
		Body:    body,
		Version: info.ETag,
		Origin:  m.Name(),
	}, nil
}
