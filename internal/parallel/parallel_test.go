package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_CoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	var sum atomic.Int64
	For(n, func(i int) {
		sum.Add(int64(i))
	}, cfg)

	assert.Equal(t, int64(n*(n-1)/2), sum.Load())
}

func TestFor_SequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}

	visited := make([]bool, 100)
	For(len(visited), func(i int) {
		visited[i] = true
	}, cfg)

	for i, v := range visited {
		assert.True(t, v, "index %d not visited", i)
	}
}

func TestForChunks_RangesDisjointAndComplete(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 4}

	counts := make([]atomic.Int32, 97)
	ForChunks(len(counts), func(start, end int) {
		for i := start; i < end; i++ {
			counts[i].Add(1)
		}
	}, cfg)

	for i := range counts {
		assert.Equal(t, int32(1), counts[i].Load(), "index %d", i)
	}
}
