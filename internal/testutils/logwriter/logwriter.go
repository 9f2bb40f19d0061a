// Package logwriter provides an io.Writer that duplicates writes to a test
// logger.
package logwriter

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
)

type Writer struct {
	t   *testing.T
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// New returns a writer that writes everything to w and complete lines
// additionally via t.Log.
// Buffered incomplete lines are logged when the test terminates.
func New(t *testing.T, w io.Writer) *Writer {
	l := Writer{
		t: t,
		w: w,
	}

	t.Cleanup(l.flush)

	return &l
}

func (l *Writer) Write(p []byte) (int, error) {
	l.t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()

	n, err := l.w.Write(p)
	l.buf.Write(p[:n])

	for {
		line, readErr := l.buf.ReadString('\n')
		if readErr != nil {
			// incomplete line, keep it buffered
			l.buf.WriteString(line)
			break
		}

		l.t.Log(strings.TrimRight(line, "\n"))
	}

	return n, err
}

func (l *Writer) flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.buf.Len() == 0 {
		return
	}

	l.t.Log(l.buf.String())
	l.buf.Reset()
}
