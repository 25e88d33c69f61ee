package anagram

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bastiangx/anaphrase/internal/utils"
	"github.com/charmbracelet/log"
)

// Sink receives solutions as workers discover them. Emit must be safe
// for concurrent use. The words slice is scratch space reused by the
// caller and is only valid for the duration of the call.
type Sink interface {
	Emit(words []string) error
}

// StreamSink writes one space-joined solution per line as soon as it
// is found, so partial results stay visible during long searches.
// Concurrent emits serialize on the sink mutex, so lines never
// interleave.
type StreamSink struct {
	mu           sync.Mutex
	w            *bufio.Writer
	count        atomic.Uint64
	lastProgress time.Time
}

// NewStreamSink wraps w in a buffered, synchronized solution writer.
// Call Close when the search is done to flush buffered lines.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bufio.NewWriter(w), lastProgress: time.Now()}
}

// Emit writes one solution line.
func (s *StreamSink) Emit(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range words {
		if i > 0 {
			if err := s.w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := s.w.WriteString(w); err != nil {
			return err
		}
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	count := s.count.Add(1)

	// Roughly once a second, flush and report progress so long runs
	// show signs of life without drowning the solution stream.
	if now := time.Now(); now.Sub(s.lastProgress) >= time.Second {
		s.lastProgress = now
		if err := s.w.Flush(); err != nil {
			return err
		}
		log.Debugf("%s solutions so far", utils.FormatWithCommas(int(count)))
	}
	return nil
}

// Count returns the number of solutions emitted so far.
func (s *StreamSink) Count() uint64 {
	return s.count.Load()
}

// Close flushes any buffered solution lines.
func (s *StreamSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// CollectSink gathers solutions in memory, optionally stopping at a
// cap. The IPC server and tests use it where streaming output would
// be awkward.
type CollectSink struct {
	mu    sync.Mutex
	limit int // 0 means unbounded
	sols  []string
}

// NewCollectSink returns a collector that accepts at most limit
// solutions; limit 0 means no cap.
func NewCollectSink(limit int) *CollectSink {
	return &CollectSink{limit: limit}
}

// Emit records one solution. Once the cap is reached it returns
// ErrLimitReached, which tells workers to stop searching.
func (c *CollectSink) Emit(words []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.limit > 0 && len(c.sols) >= c.limit {
		return ErrLimitReached
	}
	c.sols = append(c.sols, strings.Join(words, " "))
	if c.limit > 0 && len(c.sols) >= c.limit {
		return ErrLimitReached
	}
	return nil
}

// Solutions returns a copy of everything collected so far.
func (c *CollectSink) Solutions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sols...)
}
