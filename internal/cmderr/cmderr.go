// Package cmderr is the diagnostic sink for command-line errors. Messages
// are written verbatim for the user, prefixed with the program name; a
// continuation line carries extra detail for the immediately preceding
// error without repeating the prefix.
package cmderr

import (
	"fmt"
	"io"
)

// Sink emits command-line diagnostics to a single writer.
type Sink struct {
	prog string
	w    io.Writer
}

// NewSink creates a sink that prefixes primary messages with prog.
func NewSink(prog string, w io.Writer) *Sink {
	if w == nil {
		panic("cmderr: nil writer")
	}
	return &Sink{prog: prog, w: w}
}

// Error emits one primary diagnostic line.
func (s *Sink) Error(format string, args ...any) {
	fmt.Fprintf(s.w, "%s: ", s.prog)
	fmt.Fprintf(s.w, format, args...)
	fmt.Fprintln(s.w)
}

// Continuation emits detail lines attached to the preceding Error call.
func (s *Sink) Continuation(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
	fmt.Fprintln(s.w)
}
