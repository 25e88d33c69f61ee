/*
Package anagram implements the phrase-anagram search engine.

A phrase anagram is a sequence of dictionary words whose combined
letters, after case and diacritic folding, exactly reconstitute the
letters of a target text. The engine normalizes the target into a
letter multiset, filters the dictionary down to words that could still
fit, and enumerates every valid word sequence with a recursive
backtracking search fanned out across worker goroutines. Solutions
stream to a synchronized sink as they are found.

Two structural rules keep the output canonical: a dictionary word may
be used more than once in a phrase, and candidate indices never
decrease along a branch, so reorderings of the same words are a single
solution rather than many. An optional included text claims its
letters and word slots up front and leads every emitted solution.
*/
package anagram

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ErrLimitReached is returned by capped sinks once they hold as many
// solutions as they will accept. Run treats it as normal completion.
var ErrLimitReached = errors.New("solution limit reached")

// Options bundles everything one search run needs besides the
// dictionary words themselves. Zero values for MinWordLen, MaxWordLen
// and Workers select defaults; the rest must be set.
type Options struct {
	Text       string // text to anagram
	Included   string // words that must lead every solution, may be ""
	MinCard    int    // minimum words per solution, included words counted
	MaxCard    int    // maximum words per solution, included words counted
	MinWordLen int    // shortest usable dictionary word, default 1
	MaxWordLen int    // longest usable dictionary word, default MaxWordLength
	Workers    int    // search goroutines, default one per CPU
}

// Stats summarizes one completed run.
type Stats struct {
	WordsRead int           // dictionary entries before filtering
	WordsKept int           // entries in the search index
	Elapsed   time.Duration // search time, excluding index build
}

// Finder is a validated, ready-to-run search. Construct one per run
// with NewFinder.
type Finder struct {
	opts Options

	target   Multiset // residual letters after included-text subtraction
	prefix   []string // included words, leading every solution
	minWords int      // residual cardinality window
	maxWords int
	workers  int
}

// NewFinder checks opts and resolves the residual search parameters.
// All validation happens here, before any dictionary work: an error
// from NewFinder means no output was produced.
func NewFinder(opts Options) (*Finder, error) {
	if opts.MinWordLen == 0 {
		opts.MinWordLen = 1
	}
	if opts.MaxWordLen == 0 {
		opts.MaxWordLen = MaxWordLength
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	if opts.MinCard < 1 {
		return nil, fmt.Errorf("min cardinality must be at least 1, got %d", opts.MinCard)
	}
	if opts.MaxCard < opts.MinCard {
		return nil, fmt.Errorf("max cardinality %d is below min cardinality %d", opts.MaxCard, opts.MinCard)
	}
	if opts.MinWordLen < 1 || opts.MaxWordLen < opts.MinWordLen {
		return nil, fmt.Errorf("invalid word length window [%d, %d]", opts.MinWordLen, opts.MaxWordLen)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", opts.Workers)
	}

	target := NewMultiset(Normalize(opts.Text))
	if target.IsEmpty() {
		return nil, fmt.Errorf("text %q has no letters to anagram", opts.Text)
	}

	f := &Finder{
		opts:     opts,
		target:   target,
		minWords: opts.MinCard,
		maxWords: opts.MaxCard,
		workers:  opts.Workers,
	}

	if opts.Included != "" {
		// The included text's letters come off the target once, its
		// words become a mandatory leading segment, and the
		// cardinality window shrinks by its word count. This turns a
		// leaf-level constraint into an upfront reduction of the
		// whole search space without changing the solution set.
		normalized := Normalize(opts.Included)
		if normalized == "" {
			return nil, fmt.Errorf("included text %q has no letters", opts.Included)
		}
		included := NewMultiset(normalized)
		if !included.SubsetOf(target) {
			return nil, fmt.Errorf("included text %q needs letters the target does not have", opts.Included)
		}
		if included == target {
			return nil, fmt.Errorf("included text %q is already an anagram of the target", opts.Included)
		}
		f.prefix = strings.Fields(opts.Included)
		k := len(f.prefix)
		if opts.MinCard <= k {
			return nil, fmt.Errorf("min cardinality %d must exceed the %d included words", opts.MinCard, k)
		}
		f.target.MustSub(included)
		f.minWords = opts.MinCard - k
		f.maxWords = opts.MaxCard - k
	}

	return f, nil
}

// Target returns the residual letter multiset the search runs
// against, after any included-text subtraction.
func (f *Finder) Target() Multiset {
	return f.target
}

// Run builds the search index from rawWords and explores it to
// exhaustion, emitting every solution to sink. It blocks until all
// workers have drained their shards. The only error Run can return is
// a sink failure; solutions emitted before that failure stand.
func (f *Finder) Run(rawWords []string, sink Sink) (Stats, error) {
	idx := BuildIndex(rawWords, f.target, f.opts.MinWordLen, f.opts.MaxWordLen)
	stats := Stats{WordsRead: idx.WordsRead, WordsKept: len(idx.Words)}

	shards := partition(len(idx.Words), f.workers)
	log.Debugf("Searching %s across %d workers, cardinality [%d, %d]",
		f.target, len(shards), f.minWords, f.maxWords)

	start := time.Now()
	var g errgroup.Group
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		shard := shard
		g.Go(func() error {
			s := newSearcher(idx, f.target, f.prefix, f.minWords, f.maxWords, sink)
			return s.runShard(shard)
		})
	}
	err := g.Wait()
	stats.Elapsed = time.Since(start)

	if err != nil && !errors.Is(err, ErrLimitReached) {
		return stats, fmt.Errorf("search aborted: %w", err)
	}
	return stats, nil
}
