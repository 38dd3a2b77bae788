// Package iotest adapts a testing.TB into an io.Writer, so library code
// that only knows how to write to a stream (a logger, a subprocess) can be
// pointed at `go test -v` output during development.
package iotest

import (
	"bytes"
	"io"
	"sync"
)

// TLogger is the subset of testing.TB that Writer needs; *testing.T and
// *testing.B satisfy it without an explicit assertion.
type TLogger interface {
	Logf(format string, args ...any)
	Cleanup(func())
}

// Writer returns an io.Writer that forwards complete lines to t.Logf. The
// returned writer is safe for concurrent use.
func Writer(t TLogger) io.Writer {
	w, flush := newLineWriter(t.Logf)
	t.Cleanup(flush)
	return w
}

type lineWriter struct {
	logf func(string, ...any)
	buf  bytes.Buffer
	mu   sync.Mutex
}

var _ io.Writer = (*lineWriter)(nil)

func newLineWriter(logf func(string, ...any)) (*lineWriter, func()) {
	w := &lineWriter{logf: logf}
	return w, w.flush
}

var newline = []byte{'\n'}

func (w *lineWriter) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		line, rest, ok := bytes.Cut(bs, newline)
		bs = rest
		if !ok {
			w.buf.Write(line)
			break
		}
		if w.buf.Len() == 0 {
			w.logf("%s", line)
			continue
		}
		w.buf.Write(line)
		w.logf("%s", w.buf.Bytes())
		w.buf.Reset()
	}
	return total, nil
}

// flush writes any buffered partial line that never saw a trailing
// newline.
func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.logf("%s", w.buf.Bytes())
		w.buf.Reset()
	}
}
