package core

import "context"

// HttpClient is the narrow, swappable transport contract the core
// consumes. Implementations must be safe for concurrent use; their
// lifetime exceeds a single Download call. All transport-level failures
// and missing required headers surface as *NetworkError.
type HttpClient interface {
	// FetchMetadata performs a metadata probe (semantically HEAD) and
	// returns the origin's content length and range-support flag.
	FetchMetadata(ctx context.Context, url string) (FileMetadata, error)

	// DownloadRange issues a range GET with header Range: bytes=<r>. Only
	// HTTP 206 is accepted; the returned slice is the full response body.
	DownloadRange(ctx context.Context, url string, r ByteRange) ([]byte, error)

	// DownloadFull issues a plain GET. Only HTTP 200 is accepted; the
	// returned slice is the full response body.
	DownloadFull(ctx context.Context, url string) ([]byte, error)

	// Close releases underlying transport resources. Idempotent.
	Close() error
}
