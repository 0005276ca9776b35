package workers_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/evacroute/internal/workers"
)

func TestLimit(t *testing.T) {
	assert.Equal(t, 1, workers.Limit(8, 1))
	assert.Equal(t, 3, workers.Limit(3, 10))
	assert.Equal(t, 1, workers.Limit(4, 0))
	want := runtime.GOMAXPROCS(0)
	if want > 1000 {
		want = 1000
	}
	assert.Equal(t, want, workers.Limit(0, 1000))
}

func TestForEach_VisitsEveryIndexOnce(t *testing.T) {
	for _, limit := range []int{1, 4, 0} {
		const jobs = 257
		var calls int64
		slots := make([]int, jobs)
		workers.ForEach(jobs, limit, func(i int) {
			atomic.AddInt64(&calls, 1)
			slots[i] = i * i
		})
		assert.EqualValues(t, jobs, calls)
		for i, v := range slots {
			assert.Equal(t, i*i, v)
		}
	}
}

func TestForEach_NoJobs(t *testing.T) {
	workers.ForEach(0, 4, func(int) { t.Fatal("must not be called") })
}
