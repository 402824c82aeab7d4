package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "zero items", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var covered int64
			Parallelize(tt.items, func(start, end int) {
				atomic.AddInt64(&covered, int64(end-start))
			})

			if covered != int64(tt.items) {
				t.Errorf("covered %d items, want %d", covered, tt.items)
			}
		})
	}
}

func TestParallelizeDisjointRanges(t *testing.T) {
	const items = 1000
	seen := make([]int32, items)

	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, n := range seen {
		if n != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, n)
		}
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below the threshold the callback must receive the whole range at once.
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path made %d calls, want 1", calls)
	}

	// Above the threshold all items must still be covered exactly once.
	var covered int64
	ParallelizeWithThreshold(5000, 100, func(start, end int) {
		atomic.AddInt64(&covered, int64(end-start))
	})
	if covered != 5000 {
		t.Errorf("covered %d items, want 5000", covered)
	}
}
