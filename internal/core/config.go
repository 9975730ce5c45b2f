package core

import "time"

const (
	DefaultChunkSize            = 1 << 20 // 1 MiB
	DefaultMaxParallelDownloads = 4
	DefaultMaxRetries           = 3
	DefaultRetryDelay           = 1000 * time.Millisecond
)

// DownloadConfig is the validated tuning surface for a Download call.
// It is immutable once constructed by NewDownloadConfig.
type DownloadConfig struct {
	ChunkSize            int64
	MaxParallelDownloads int
	MaxRetries           int
	RetryDelay           time.Duration
}

// DefaultDownloadConfig returns the documented defaults: 1 MiB chunks,
// 4-way parallelism, 3 retries, 1s base backoff delay.
func DefaultDownloadConfig() DownloadConfig {
	cfg, err := NewDownloadConfig(DefaultChunkSize, DefaultMaxParallelDownloads, DefaultMaxRetries, DefaultRetryDelay)
	if err != nil {
		// The defaults are constants chosen to always validate.
		panic(err)
	}
	return cfg
}

// NewDownloadConfig validates its arguments and returns a DownloadConfig.
// chunkSize must be > 0, maxParallelDownloads >= 1, maxRetries >= 0, and
// retryDelay >= 0.
func NewDownloadConfig(chunkSize int64, maxParallelDownloads int, maxRetries int, retryDelay time.Duration) (DownloadConfig, error) {
	if chunkSize <= 0 {
		return DownloadConfig{}, &InvalidConfigError{Field: "ChunkSize", Message: "must be positive"}
	}
	if maxParallelDownloads < 1 {
		return DownloadConfig{}, &InvalidConfigError{Field: "MaxParallelDownloads", Message: "must be at least 1"}
	}
	if maxRetries < 0 {
		return DownloadConfig{}, &InvalidConfigError{Field: "MaxRetries", Message: "must be non-negative"}
	}
	if retryDelay < 0 {
		return DownloadConfig{}, &InvalidConfigError{Field: "RetryDelay", Message: "must be non-negative"}
	}
	return DownloadConfig{
		ChunkSize:            chunkSize,
		MaxParallelDownloads: maxParallelDownloads,
		MaxRetries:           maxRetries,
		RetryDelay:           retryDelay,
	}, nil
}
