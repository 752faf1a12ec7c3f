package schedule

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoWithoutPoolRunsSynchronously(t *testing.T) {
	assert.False(t, Running())
	var seen int64
	Do(100, func(lo, hi int) {
		atomic.AddInt64(&seen, int64(hi-lo))
	})
	assert.Equal(t, int64(100), atomic.LoadInt64(&seen))
}

func TestParallelizeCoversWholeRangeExactlyOnce(t *testing.T) {
	Parallelize(4)
	defer Unparallelize()

	n := 1000
	hits := make([]int32, n)
	Do(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d covered %d times", i, h)
	}
}

func TestParallelizeIsIdempotent(t *testing.T) {
	Parallelize(2)
	defer Unparallelize()
	Parallelize(2) // no-op, must not panic or deadlock
	assert.True(t, Running())
}

func TestReparallelizeRestarts(t *testing.T) {
	Parallelize(2)
	Reparallelize(4)
	defer Unparallelize()
	assert.True(t, Running())

	var seen int64
	Do(50, func(lo, hi int) { atomic.AddInt64(&seen, int64(hi-lo)) })
	assert.Equal(t, int64(50), seen)
}

func TestSetMinSliceSizeOverridesAndRestoresDefault(t *testing.T) {
	defer SetMinSliceSize(0)
	SetMinSliceSize(10)
	assert.Equal(t, 10, MinSliceSize())

	SetMinSliceSize(0)
	assert.Equal(t, defaultMinSliceSize, MinSliceSize())
}

func TestUnparallelizeThenDoRunsSynchronously(t *testing.T) {
	Parallelize(2)
	Unparallelize()
	assert.False(t, Running())

	var seen int64
	Do(10, func(lo, hi int) { atomic.AddInt64(&seen, int64(hi-lo)) })
	assert.Equal(t, int64(10), seen)
}
