package output

import (
	"fmt"
	"sync"
	"time"
)

// ConsoleProgressListener renders a single live progress line for one
// download to stdout. It satisfies core.ProgressListener structurally
// (OnProgress(downloaded, total int64)) without importing the core
// package, keeping this package a logging/rendering leaf.
type ConsoleProgressListener struct {
	label string

	mu          sync.Mutex
	startTime   time.Time
	lastPrinted time.Time
}

// NewConsoleProgressListener creates a listener that labels its output
// line with label (typically the output file name).
func NewConsoleProgressListener(label string) *ConsoleProgressListener {
	return &ConsoleProgressListener{
		label:     label,
		startTime: time.Now(),
	}
}

// throttle limits the printed refresh rate so fast concurrent chunk
// completions don't flood the terminal.
const throttle = 100 * time.Millisecond

// OnProgress renders the current progress line. Safe for concurrent use;
// call sites that race only ever overwrite the same line with a newer
// prefix sum.
func (c *ConsoleProgressListener) OnProgress(downloaded, total int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	isFinal := downloaded >= total
	if !isFinal && now.Sub(c.lastPrinted) < throttle {
		return
	}

	elapsed := now.Sub(c.startTime).Seconds()
	speed := FormatSpeed(downloaded, elapsed)
	bar := PrintProgressBar(downloaded, total, 30)
	fmt.Printf("\r%s %s %s %s", bar, c.label, StyleSymbols["bullet"], debugStyle.Render(speed))
	if isFinal {
		fmt.Println()
	}
	c.lastPrinted = now
}
