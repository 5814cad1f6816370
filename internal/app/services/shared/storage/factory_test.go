package storage

import (
	"testing"
	"timetable-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDocumentSource(t *testing.T) {
	newConfig := func(timetable config.AppTimetable) *config.InternalConfig {
		return &config.InternalConfig{Timetable: timetable}
	}

	t.Run("File", func(t *testing.T) {
		source, err := NewDocumentSource(newConfig(config.AppTimetable{Source: "file", FilePath: "data/timetable.json"}), nil, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "file:data/timetable.json", source.Name())
	})

	t.Run("HTTP", func(t *testing.T) {
		source, err := NewDocumentSource(newConfig(config.AppTimetable{Source: "http", URL: "https://example.test/t.json", HTTPTimeoutInSeconds: 5}), nil, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "http:https://example.test/t.json", source.Name())
	})

	t.Run("HTTP Without URL", func(t *testing.T) {
		_, err := NewDocumentSource(newConfig(config.AppTimetable{Source: "http"}), nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Minio Without Client", func(t *testing.T) {
		_, err := NewDocumentSource(newConfig(config.AppTimetable{Source: "minio"}), nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Unknown Source", func(t *testing.T) {
		_, err := NewDocumentSource(newConfig(config.AppTimetable{Source: "ftp"}), nil, zap.NewNop())
		assert.Error(t, err)
	})
}
