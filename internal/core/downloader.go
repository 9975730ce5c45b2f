package core

import (
	"context"

	"github.com/tanq16/fetchcore/internal/output"
)

// Downloader is the single end-to-end entry point: probe, plan, and
// either run the bounded-concurrency range fetch against a
// PositionalWriter or fall back to a single retried full GET.
type Downloader struct {
	client   HttpClient
	cfg      DownloadConfig
	listener ProgressListener
}

// NewDownloader builds a Downloader against the given HttpClient and
// tuning config. listener may be nil.
func NewDownloader(client HttpClient, cfg DownloadConfig, listener ProgressListener) *Downloader {
	return &Downloader{
		client:   client,
		cfg:      cfg,
		listener: progressOrNoop(listener),
	}
}

// Download retrieves url into outputPath. If the origin does not
// advertise range support, it falls back to a single retried GET that
// buffers the whole body before writing it once. Errors propagate
// verbatim; the facade does not catch or reinterpret DownloadError.
func (d *Downloader) Download(ctx context.Context, url, outputPath string) error {
	log := output.GetLogger("downloader")

	metadata, err := d.client.FetchMetadata(ctx, url)
	if err != nil {
		return err
	}
	log.Debug().Int64("contentLength", metadata.ContentLength).Bool("acceptsRanges", metadata.AcceptsRanges).Msg("probed metadata")

	if !metadata.AcceptsRanges {
		log.Debug().Str("url", url).Msg("origin does not support ranges, falling back to single stream")
		return d.downloadFallback(ctx, url, outputPath)
	}

	ranges, err := Split(metadata.ContentLength, d.cfg.ChunkSize)
	if err != nil {
		return err
	}

	writer, err := NewPositionalWriter(outputPath, metadata.ContentLength)
	if err != nil {
		return err
	}

	fetcher := NewFetcher(url, ranges, metadata.ContentLength, d.client, writer, d.cfg, d.listener)
	fetchErr := fetcher.Run(ctx)
	closeErr := writer.Close()
	if fetchErr != nil {
		return fetchErr
	}
	return closeErr
}

func (d *Downloader) downloadFallback(ctx context.Context, url, outputPath string) error {
	retryCfg := RetryConfigFromDownloadConfig(d.cfg)
	data, err := Do(ctx, retryCfg, IsNetworkError, func(ctx context.Context) ([]byte, error) {
		return d.client.DownloadFull(ctx, url)
	})
	if err != nil {
		return err
	}

	d.listener.OnProgress(int64(len(data)), int64(len(data)))

	writer, err := NewPositionalWriter(outputPath, int64(len(data)))
	if err != nil {
		return err
	}
	if err := writer.WriteAt(0, data); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}
