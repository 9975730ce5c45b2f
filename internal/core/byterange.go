// Package core implements the chunk-planning, retry, positional-write,
// and bounded-concurrency fetch machinery behind a parallel HTTP range
// downloader.
package core

import "fmt"

// ByteRange is an inclusive [Start, End] span of byte offsets within a
// remote resource. It is immutable once constructed.
type ByteRange struct {
	Start int64
	End   int64
}

// NewByteRange validates and constructs a ByteRange. End must be >= Start
// and both must be non-negative.
func NewByteRange(start, end int64) (ByteRange, error) {
	if start < 0 || end < start {
		return ByteRange{}, &InvalidArgumentError{
			Arg:     "start, end",
			Message: fmt.Sprintf("require 0 <= start <= end, got start=%d end=%d", start, end),
		}
	}
	return ByteRange{Start: start, End: end}, nil
}

// Length returns the number of bytes spanned by the range, inclusive.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// Header renders the range as an HTTP Range header value, e.g.
// "bytes=0-1023".
func (r ByteRange) Header() string {
	return fmt.Sprintf("bytes=%d-%d", r.Start, r.End)
}
