package anagram

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSinkWritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)

	require.NoError(t, sink.Emit([]string{"bar", "man"}))
	require.NoError(t, sink.Emit([]string{"barman"}))
	require.NoError(t, sink.Close())

	assert.Equal(t, "bar man\nbarman\n", buf.String())
	assert.Equal(t, uint64(2), sink.Count())
}

func TestStreamSinkConcurrentEmits(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_ = sink.Emit([]string{"alpha", "beta", "gamma"})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, sink.Close())

	// Every line must come through whole: no interleaving, no torn
	// writes.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*perGoroutine)
	for _, line := range lines {
		assert.Equal(t, "alpha beta gamma", line)
	}
	assert.Equal(t, uint64(goroutines*perGoroutine), sink.Count())
}

func TestCollectSinkLimit(t *testing.T) {
	sink := NewCollectSink(2)
	require.NoError(t, sink.Emit([]string{"one"}))
	assert.ErrorIs(t, sink.Emit([]string{"two"}), ErrLimitReached)
	assert.ErrorIs(t, sink.Emit([]string{"three"}), ErrLimitReached)
	assert.Equal(t, []string{"one", "two"}, sink.Solutions())
}

func TestCollectSinkCopiesWords(t *testing.T) {
	// Workers reuse the emitted slice as scratch space; the sink must
	// not hold on to it.
	sink := NewCollectSink(0)
	scratch := []string{"eat"}
	require.NoError(t, sink.Emit(scratch))
	scratch[0] = "mutated"
	assert.Equal(t, []string{"eat"}, sink.Solutions())
}
