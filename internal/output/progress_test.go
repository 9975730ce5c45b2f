package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestConsoleProgressListener_PrintsFinalLineWithNewline(t *testing.T) {
	listener := NewConsoleProgressListener("test-file")

	out := captureStdout(t, func() {
		listener.OnProgress(100, 100)
	})

	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "test-file")
	assert.Contains(t, out, "100.0%")
}

func TestConsoleProgressListener_ThrottlesRapidNonFinalUpdates(t *testing.T) {
	listener := NewConsoleProgressListener("test-file")

	out := captureStdout(t, func() {
		listener.OnProgress(10, 100)
		listener.OnProgress(20, 100)
		listener.OnProgress(30, 100)
	})

	assert.Equal(t, 1, strings.Count(out, "test-file"))
}
