package anagram

// searcher runs one worker's depth-first enumeration over its shard
// of first-word indices. Everything except the mutable search state
// is read-only after construction; the state (remaining letters,
// chosen indices, scratch output) belongs to this worker alone and is
// unwound in place on backtrack.
type searcher struct {
	index    *Index
	prefix   []string // included-text words leading every solution
	minWords int      // residual cardinality window for chosen words
	maxWords int
	sink     Sink

	remaining Multiset
	chosen    []int
	out       []string
	err       error
}

func newSearcher(index *Index, target Multiset, prefix []string, minWords, maxWords int, sink Sink) *searcher {
	return &searcher{
		index:     index,
		prefix:    prefix,
		minWords:  minWords,
		maxWords:  maxWords,
		sink:      sink,
		remaining: target,
		chosen:    make([]int, 0, maxWords),
		out:       make([]string, 0, len(prefix)+maxWords),
	}
}

// runShard seeds one top-level exploration per first-word index in
// the shard. A sink error stops the shard early; anything emitted
// before that stands.
func (s *searcher) runShard(shard []int) error {
	for _, first := range shard {
		w := s.index.Words[first]
		if !w.Letters.SubsetOf(s.remaining) {
			continue
		}
		s.remaining.MustSub(w.Letters)
		s.chosen = append(s.chosen, first)
		s.explore(first)
		s.chosen = s.chosen[:0]
		s.remaining.Add(w.Letters)
		if s.err != nil {
			return s.err
		}
	}
	return nil
}

// explore extends the current partial phrase with candidate words at
// index >= start. The word at start itself may repeat, so one
// dictionary word can occur several times in a phrase; keeping the
// chosen indices non-decreasing also makes the index-ordered sequence
// the single representative of each word combination, so permutations
// never show up as separate solutions.
func (s *searcher) explore(start int) {
	if s.remaining.IsEmpty() {
		if len(s.chosen) >= s.minWords {
			s.emit()
		}
		return
	}
	if len(s.chosen) >= s.maxWords {
		// Letters left but no word slots: dead branch.
		return
	}

	words := s.index.Words
	for i := start; i < len(words); i++ {
		if !words[i].Letters.SubsetOf(s.remaining) {
			continue
		}
		s.remaining.MustSub(words[i].Letters)
		s.chosen = append(s.chosen, i)
		s.explore(i)
		s.chosen = s.chosen[:len(s.chosen)-1]
		s.remaining.Add(words[i].Letters)
		if s.err != nil {
			return
		}
	}
}

func (s *searcher) emit() {
	s.out = s.out[:0]
	s.out = append(s.out, s.prefix...)
	for _, i := range s.chosen {
		s.out = append(s.out, s.index.Words[i].Text)
	}
	if err := s.sink.Emit(s.out); err != nil {
		s.err = err
	}
}

// partition deals the first-word indices round-robin into disjoint
// shards, one per worker. Dealing round-robin rather than in blocks
// spreads the expensive low-index subtrees across workers instead of
// handing them all to worker zero.
func partition(indexLen, workers int) [][]int {
	if workers < 1 {
		workers = 1
	}
	if indexLen > 0 && workers > indexLen {
		workers = indexLen
	}
	shards := make([][]int, workers)
	for i := 0; i < indexLen; i++ {
		shards[i%workers] = append(shards[i%workers], i)
	}
	return shards
}
