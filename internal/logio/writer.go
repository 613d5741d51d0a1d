package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that emits one Logf call per complete line written
// to it, e.g. to route a table dump through a Logger level or testing.T.Logf.
type Writer struct {
	Logf func(string, ...interface{})

	mu      sync.Mutex
	partial []byte
}

// Write logs every line that p completes, holding any trailing partial line
// for a later Write or Close. It never fails.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for {
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, line...)
			return n, nil
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.Logf("%s", line)
		p = rest
	}
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.Logf("%s", lw.partial)
		lw.partial = nil
	}
	return nil
}
