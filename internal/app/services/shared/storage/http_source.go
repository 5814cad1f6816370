package storage

import (
	"context"
	"io"
	"net/http"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type httpSource struct {
	url    string
	client *http.Client
	Log    *zap.Logger
}

func NewHTTPSource(url string, timeout time.Duration, logger *zap.Logger) contracts.DocumentSource {
	return &httpSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		Log:    logger,
	}
}

func (s *httpSource) Name() string {
	return constvars.TimetableSourceHTTP + ":" + s.url
}

func (s *httpSource) Fetch(ctx context.Context) (*contracts.RawDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("httpSource.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceKey, s.url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("httpSource.Fetch unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUnexpectedHTTPStatus(resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	return &contracts.RawDocument{
		Body:    body,
		Version: resp.Header.Get(constvars.HeaderETag),
		Origin:  s.Name(),
	}, nil
}
