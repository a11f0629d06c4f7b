package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{"zero items", 0},
		{"single item", 1},
		{"fewer items than cores", 3},
		{"many items", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.items)
			Parallelize(tt.items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})

			for i, c := range seen {
				if c != 1 {
					t.Fatalf("item %d visited %d times, want exactly once", i, c)
				}
			}
		})
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below the threshold the function must run once over the full range.
	var calls int32
	ParallelizeWithThreshold(4, 10, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 4 {
			t.Errorf("sequential call got range [%d,%d), want [0,4)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected a single sequential call, got %d", calls)
	}

	// Above the threshold every item is still covered exactly once.
	const items = 64
	seen := make([]int32, items)
	ParallelizeWithThreshold(items, 10, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("item %d visited %d times, want exactly once", i, c)
		}
	}
}
