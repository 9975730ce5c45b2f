package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDownloadConfig(t *testing.T) {
	cfg := DefaultDownloadConfig()
	assert.Equal(t, int64(DefaultChunkSize), cfg.ChunkSize)
	assert.Equal(t, DefaultMaxParallelDownloads, cfg.MaxParallelDownloads)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultRetryDelay, cfg.RetryDelay)
}

func TestNewDownloadConfig_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name       string
		chunkSize  int64
		parallel   int
		maxRetries int
		delay      time.Duration
		wantField  string
	}{
		{"zero chunk size", 0, 1, 0, 0, "ChunkSize"},
		{"negative chunk size", -1, 1, 0, 0, "ChunkSize"},
		{"zero parallelism", 1024, 0, 0, 0, "MaxParallelDownloads"},
		{"negative max retries", 1024, 1, -1, 0, "MaxRetries"},
		{"negative retry delay", 1024, 1, 0, -time.Second, "RetryDelay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDownloadConfig(tt.chunkSize, tt.parallel, tt.maxRetries, tt.delay)
			require.Error(t, err)
			var cfgErr *InvalidConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestNewDownloadConfig_AcceptsValidFields(t *testing.T) {
	cfg, err := NewDownloadConfig(2048, 8, 5, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.ChunkSize)
	assert.Equal(t, 8, cfg.MaxParallelDownloads)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
}
