package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/ghalamif/AegisRT/internal/ports"
)

// Writer serialises lines from concurrent tasks onto w.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Linef formats one line and writes it with a single Write call.
// Write errors are dropped; the stream is best effort.
func (c *Writer) Linef(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = fmt.Appendf(c.buf[:0], format, args...)
	c.buf = append(c.buf, '\n')
	_, _ = c.w.Write(c.buf)
}

var _ ports.Console = (*Writer)(nil)
