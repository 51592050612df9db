// Package ui holds terminal output helpers.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nexuslink/nlink/internal/domain"
)

// Writer implements domain.OutputWriter. Output can be redirected for the
// duration of a call with Capture, which the interactive shell uses to
// collect command output.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithOutput sets the destination, stdout by default.
func WithOutput(out io.Writer) WriterOption {
	return func(w *Writer) {
		w.out = out
	}
}

func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{out: os.Stdout}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWriterTo creates a Writer that writes to out.
func NewWriterTo(out io.Writer) *Writer {
	return NewWriter(WithOutput(out))
}

func (w *Writer) target() io.Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.target().Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.target(), format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.target(), args...)
}

// Capture sends output to dst while fn runs, then restores the previous
// destination.
func (w *Writer) Capture(dst io.Writer, fn func()) {
	w.mu.Lock()
	prev := w.out
	w.out = dst
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.out = prev
		w.mu.Unlock()
	}()

	fn()
}

var _ domain.OutputWriter = (*Writer)(nil)
