package workqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRunsAndReturnsResult(t *testing.T) {
	q := New(2)
	f := Submit(q, func() int { return 42 })
	assert.Equal(t, 42, f.Get())
}

func TestForRangePreservesIndexOrderOfResults(t *testing.T) {
	q := New(4)
	futures := ForRange(q, 10, func(i int) int { return i * i })
	results := WaitAll(futures)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestForRangeWithOneWorkerReturnsAllResultsInOrder(t *testing.T) {
	q := New(1)
	futures := ForRange(q, 5, func(i int) int { return i })
	results := WaitAll(futures)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, results)
}

func TestWaitBlocksUntilDone(t *testing.T) {
	q := New(1)
	f := Submit(q, func() string { return "done" })
	f.Wait()
	assert.Equal(t, "done", f.Get())
}
