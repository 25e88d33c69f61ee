package anagram

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinderValidation(t *testing.T) {
	testCases := []struct {
		opts Options
		desc string
	}{
		{Options{Text: "eat", MinCard: 0, MaxCard: 3}, "zero min cardinality"},
		{Options{Text: "eat", MinCard: 3, MaxCard: 1}, "max below min"},
		{Options{Text: "eat", MinCard: 1, MaxCard: 3, MinWordLen: 5, MaxWordLen: 2}, "inverted word length window"},
		{Options{Text: "eat", MinCard: 1, MaxCard: 3, Workers: -1}, "negative workers"},
		{Options{Text: "123 !?", MinCard: 1, MaxCard: 3}, "letterless target"},
		{Options{Text: "eat", Included: "!!!", MinCard: 2, MaxCard: 3}, "letterless included text"},
		{Options{Text: "eat", Included: "zap", MinCard: 2, MaxCard: 3}, "included letters not in target"},
		{Options{Text: "eat", Included: "tea", MinCard: 2, MaxCard: 3}, "included is already an anagram"},
		{Options{Text: "eat", Included: "at", MinCard: 1, MaxCard: 3}, "min cardinality not above included words"},
	}

	for _, tc := range testCases {
		_, err := NewFinder(tc.opts)
		assert.Error(t, err, tc.desc)
	}
}

func TestNewFinderDefaults(t *testing.T) {
	f, err := NewFinder(Options{Text: "eat", MinCard: 1, MaxCard: 2})
	require.NoError(t, err)
	assert.Equal(t, NewMultiset("eat"), f.Target())
	assert.GreaterOrEqual(t, f.workers, 1, "defaults to one worker per CPU")
	assert.Equal(t, 1, f.opts.MinWordLen)
	assert.Equal(t, MaxWordLength, f.opts.MaxWordLen)
}

func TestIncludedTextReducesTarget(t *testing.T) {
	f, err := NewFinder(Options{Text: "stolen tale", Included: "no tales", MinCard: 3, MaxCard: 5})
	require.NoError(t, err)
	assert.Equal(t, NewMultiset("elt"), f.Target())
	assert.Equal(t, []string{"no", "tales"}, f.prefix)
	assert.Equal(t, 1, f.minWords)
	assert.Equal(t, 3, f.maxWords)
}

func TestRunWorkerCountInvariance(t *testing.T) {
	dict := []string{
		"dormitory", "dirty", "room", "dim", "troy", "dorm",
		"it", "or", "my", "rid", "tom", "dry", "moo", "trim",
	}
	opts := Options{Text: "dormitory", MinCard: 1, MaxCard: 4}

	var baseline []string
	for _, workers := range []int{1, 2, 4, 7} {
		opts.Workers = workers
		got := runSearch(t, opts, dict)
		if baseline == nil {
			baseline = got
			require.NotEmpty(t, baseline)
			continue
		}
		assert.ElementsMatch(t, baseline, got, "worker count %d must not change the solution set", workers)
	}
}

func TestRunDeterministicContent(t *testing.T) {
	dict := []string{"eat", "tea", "ate", "at", "e", "a", "t"}
	opts := Options{Text: "eat tea", MinCard: 1, MaxCard: 4, Workers: 4}

	first := runSearch(t, opts, dict)
	second := runSearch(t, opts, dict)

	sort.Strings(first)
	sort.Strings(second)
	assert.Equal(t, first, second, "same inputs and worker count give the same output multiset")
}

func TestRunStats(t *testing.T) {
	dict := []string{"eat", "tea", "xyz", "q"}
	finder, err := NewFinder(Options{Text: "eat", MinCard: 1, MaxCard: 2, Workers: 1})
	require.NoError(t, err)

	sink := NewCollectSink(0)
	stats, err := finder.Run(dict, sink)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.WordsRead)
	assert.Equal(t, 2, stats.WordsKept)
	assert.ElementsMatch(t, []string{"eat", "tea"}, sink.Solutions())
}

func TestRunSolutionCap(t *testing.T) {
	dict := []string{"eat", "tea", "ate", "at", "e"}
	finder, err := NewFinder(Options{Text: "eat", MinCard: 1, MaxCard: 2, Workers: 2})
	require.NoError(t, err)

	sink := NewCollectSink(2)
	_, err = finder.Run(dict, sink)
	require.NoError(t, err, "hitting the cap is a normal completion")
	assert.Len(t, sink.Solutions(), 2)
}
