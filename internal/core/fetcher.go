package core

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tanq16/fetchcore/internal/output"
)

// Fetcher drives the parallel range-request phase of a download.
type Fetcher struct {
	url      string
	ranges   []ByteRange
	total    int64
	client   HttpClient
	writer   *PositionalWriter
	cfg      DownloadConfig
	listener ProgressListener
}

// NewFetcher constructs a Fetcher for one download's range phase.
func NewFetcher(url string, ranges []ByteRange, total int64, client HttpClient, writer *PositionalWriter, cfg DownloadConfig, listener ProgressListener) *Fetcher {
	return &Fetcher{
		url:      url,
		ranges:   ranges,
		total:    total,
		client:   client,
		writer:   writer,
		cfg:      cfg,
		listener: progressOrNoop(listener),
	}
}

// Run fetches every range under the configured parallelism ceiling. The
// first range task whose error escapes retry cancels all siblings (via
// errgroup's shared context); that error propagates from Run unchanged.
// There is no partial success.
func (f *Fetcher) Run(ctx context.Context) error {
	log := output.GetLogger("fetcher")
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(f.cfg.MaxParallelDownloads)

	var downloaded int64

	for _, r := range f.ranges {
		r := r
		group.Go(func() error {
			return f.fetchOne(groupCtx, r, &downloaded, log)
		})
	}

	return group.Wait()
}

// fetchOne downloads, verifies, and writes a single range, retrying
// NetworkErrors with backoff and reporting progress on success.
func (f *Fetcher) fetchOne(ctx context.Context, r ByteRange, downloaded *int64, log zerolog.Logger) error {
	retryCfg := RetryConfigFromDownloadConfig(f.cfg)
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		log.Debug().Err(err).Int("attempt", attempt+1).Str("range", r.Header()).Dur("delay", delay).Msg("retrying range request")
	}

	data, err := Do(ctx, retryCfg, IsNetworkError, func(ctx context.Context) ([]byte, error) {
		return f.client.DownloadRange(ctx, f.url, r)
	})
	if err != nil {
		return err
	}

	if int64(len(data)) != r.Length() {
		return &ChunkSizeMismatchError{Expected: r.Length(), Actual: int64(len(data)), Range: r}
	}

	if err := f.writer.WriteAt(r.Start, data); err != nil {
		return err
	}

	newTotal := atomic.AddInt64(downloaded, int64(len(data)))
	f.listener.OnProgress(newTotal, f.total)
	return nil
}
