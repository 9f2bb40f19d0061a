// Package term provides functions for printing messages to a terminal.
package term

import (
	"fmt"
	"io"
	"sync"
)

// Stream is a concurrency-safe output for terminal messages.
type Stream struct {
	stream io.Writer
	lock   sync.Mutex
}

func NewStream(out io.Writer) *Stream {
	return &Stream{stream: out}
}

func (s *Stream) Printf(format string, a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintf(s.stream, format, a...)
}

func (s *Stream) Println(a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintln(s.stream, a...)
}

// ErrPrintln prints an error with an "ERROR: " prefix.
// If msg is passed it is printed before the error, separated by a colon.
func (s *Stream) ErrPrintln(err error, msg ...any) {
	if len(msg) == 0 {
		s.Println(RedHighlight("ERROR:"), err.Error())
		return
	}

	s.Println(RedHighlight("ERROR:"), fmt.Sprint(msg...)+": "+err.Error())
}

// ErrPrintf prints an error with an "ERROR: " prefix, prefixed by the
// formatted message.
func (s *Stream) ErrPrintf(err error, format string, a ...any) {
	s.ErrPrintln(err, fmt.Sprintf(format, a...))
}

func (s *Stream) Write(p []byte) (n int, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stream.Write(p)
}
