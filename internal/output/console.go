package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))   // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))  // blue
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // light grey
)

// StyleSymbols maps a small set of status names to their glyphs, used by
// the ConsoleProgressListener's progress line.
var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"pending": "◉",
	"bullet":  "•",
}

func PrintSuccess(text string) { fmt.Println(successStyle.Render(text)) }
func PrintError(text string)   { fmt.Println(errorStyle.Render(text)) }
func PrintWarning(text string) { fmt.Println(warningStyle.Render(text)) }
func PrintPending(text string) { fmt.Println(pendingStyle.Render(text)) }
func PrintDebug(text string)   { fmt.Println(debugStyle.Render(text)) }

// FormatBytes renders a byte count in human-readable units, e.g.
// "4.12 MB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatSpeed renders a transfer rate given bytes transferred over an
// elapsed duration in seconds.
func FormatSpeed(bytes int64, elapsedSeconds float64) string {
	if elapsedSeconds <= 0 {
		return "0 B/s"
	}
	bps := int64(float64(bytes) / elapsedSeconds)
	return FormatBytes(bps) + "/s"
}

// PrintProgressBar renders a simple bracketed progress bar of the given
// width for outof/total.
func PrintProgressBar(outof, total int64, width int) string {
	if total <= 0 {
		return "[" + repeat(" ", width) + "] ?%"
	}
	filled := int(float64(outof) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	pct := float64(outof) / float64(total) * 100
	return fmt.Sprintf("[%s%s] %5.1f%% ", repeat("=", filled), repeat(" ", width-filled), pct)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
