package server

import (
	"errors"
	"io"
	"time"

	"github.com/bastiangx/anaphrase/internal/logger"
	"github.com/bastiangx/anaphrase/pkg/anagram"
	"github.com/bastiangx/anaphrase/pkg/config"
	"github.com/vmihailenco/msgpack/v5"
)

var slog = logger.Default("ipc")

// Server answers anagram requests over a msgpack stream. The word
// list is loaded once and shared across requests; each request builds
// its own index against its own target.
type Server struct {
	words []string
	cfg   *config.Config
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
}

// NewServer creates a search server reading requests from r and
// writing responses to w.
func NewServer(words []string, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		words: words,
		cfg:   cfg,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF and
// the decode error otherwise.
func (s *Server) Start() error {
	slog.Debugf("Serving %d dictionary words", len(s.words))

	for {
		var req AnagramRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			slog.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleSearch(req)
	}
}

// handleSearch runs one request to completion and sends either the
// solutions or an error response. Requests are processed one at a
// time; the search itself fans out across workers internally.
func (s *Server) handleSearch(req AnagramRequest) {
	if req.Text == "" {
		s.sendError(req.ID, "Missing 'text' parameter", 400)
		return
	}

	defaults := s.cfg.Search
	minCard := req.MinCard
	if minCard == 0 {
		minCard = defaults.MinCardinality
	}
	maxCard := req.MaxCard
	if maxCard == 0 {
		maxCard = defaults.MaxCardinality
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.Server.MaxSolutions
	}

	finder, err := anagram.NewFinder(anagram.Options{
		Text:       req.Text,
		Included:   req.Included,
		MinCard:    minCard,
		MaxCard:    maxCard,
		MinWordLen: defaults.MinWordLength,
		MaxWordLen: defaults.MaxWordLength,
		Workers:    defaults.Workers,
	})
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}

	sink := anagram.NewCollectSink(limit)
	start := time.Now()
	stats, err := finder.Run(s.words, sink)
	if err != nil {
		slog.Errorf("Search failed for %q: %v", req.Text, err)
		s.sendError(req.ID, err.Error(), 500)
		return
	}

	solutions := sink.Solutions()
	slog.Debugf("Request %s: %d solutions from %d usable words in %v",
		req.ID, len(solutions), stats.WordsKept, stats.Elapsed)

	s.send(AnagramResponse{
		ID:        req.ID,
		Solutions: solutions,
		Count:     len(solutions),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// send encodes one response onto the stream.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		slog.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
