package scheduler

import (
	"testing"

	"github.com/sofimaye/platter/disk"
	"github.com/sofimaye/platter/queue"
)

func TestLook(t *testing.T) {
	type testCase struct {
		name   string
		start  int
		tracks []int
		total  int64
		head   int
	}

	testCases := []testCase{{
		// 10 and 15 on the way up, then the sweep reverses onto 5
		name:   "up then down",
		start:  7,
		tracks: []int{10, 5, 15},
		total:  2544,
		head:   5,
	}, {
		// nothing above the head: the reversal itself moves no tracks, so
		// the total is the pure downward cost
		name:   "reversal is free",
		start:  50,
		tracks: []int{40, 30, 20},
		total:  4224,
		head:   20,
	}, {
		name:   "ascending sweep",
		start:  0,
		tracks: requests(),
		total:  24028,
		head:   171,
	}, {
		// neither direction has a strict candidate; the duplicates are
		// serviced in arrival order at rotation cost only
		name:   "requests under the head",
		start:  7,
		tracks: []int{7, 7},
		total:  16,
		head:   7,
	}, {
		name:   "below before equal",
		start:  5,
		tracks: []int{5, 5, 3},
		total:  584,
		head:   5,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(disk.DefaultGeometry(), tc.start)
			q := queue.New(tc.tracks...)
			if got := s.Look(q); got != tc.total {
				t.Fatalf("Look total: wanted %d; found %d", tc.total, got)
			}
			if !q.IsEmpty() {
				t.Fatalf("queue not drained: %v", q.Tracks())
			}
			if s.Position() != tc.head {
				t.Fatalf("head: wanted %d; found %d", tc.head, s.Position())
			}
		})
	}
}
