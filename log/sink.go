package log

import (
	"io"
	"sync"
)

// Sink is the capability surface the facade requires of an output
// destination. It is deliberately restricted to the single documented
// operation; a collaborator needing more from a sink must extend this
// interface explicitly rather than reach past it.
type Sink interface {
	// Write appends one rendered record. Errors are propagated to the
	// logging caller unmodified.
	Write(line []byte) error
}

// writerSink adapts an [io.Writer]. The mutex serializes writes so
// records from concurrent callers never interleave.
type writerSink struct {
	mu *sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink backed by w. A nil writer discards all
// records.
func NewWriterSink(w io.Writer) Sink {
	if w == nil {
		w = io.Discard
	}

	return &writerSink{
		mu: &sync.Mutex{},
		w:  w,
	}
}

func (s *writerSink) Write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(line)

	return err
}
