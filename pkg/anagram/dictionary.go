package anagram

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// MaxWordLength caps how long a dictionary entry can be after
// normalization. Longer entries are noise in every word list we have
// seen and would only widen the search multisets.
const MaxWordLength = 45

// Word is one dictionary entry that survived the feasibility filter.
// Immutable once constructed.
type Word struct {
	Text    string   // original spelling, used for output
	Letters Multiset // normalized letter counts
	Length  int      // normalized letter count total
}

// Index is the filtered, source-ordered dictionary for one search
// run. It is built once and then shared read-only by every worker, so
// no locking is needed around it.
type Index struct {
	Words     []Word
	WordsRead int // entries seen before filtering
}

// LoadWordList reads a newline-delimited word list from path. Blank
// lines and exact duplicate lines are dropped; the order of first
// appearance is preserved.
func LoadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	seen := patricia.NewTrie()
	var words []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Insert reports false when the line is already in the trie.
		if !seen.Insert(patricia.Prefix(line), struct{}{}) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Read %d unique words from %s", len(words), path)
	return words, nil
}

// BuildIndex normalizes rawWords and keeps only entries that could
// appear in some solution for target: non-empty after normalization,
// inside the [minLen, maxLen] window, and a letter subset of target.
// This upfront filter is the main pruning lever; it collapses the
// branching factor before any search starts. Survivors keep their
// source order so enumeration stays deterministic.
func BuildIndex(rawWords []string, target Multiset, minLen, maxLen int) *Index {
	idx := &Index{WordsRead: len(rawWords)}

	for _, raw := range rawWords {
		normalized := Normalize(raw)
		if normalized == "" {
			continue
		}
		length := len(normalized)
		if length < minLen || length > maxLen {
			continue
		}
		letters := NewMultiset(normalized)
		if !letters.SubsetOf(target) {
			continue
		}
		idx.Words = append(idx.Words, Word{Text: raw, Letters: letters, Length: length})
	}

	log.Debugf("Index built: %d of %d words usable", len(idx.Words), idx.WordsRead)
	return idx
}
