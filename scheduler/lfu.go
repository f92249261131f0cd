package scheduler

import (
	"github.com/sofimaye/platter/constant"
	"github.com/sofimaye/platter/queue"
	"github.com/sofimaye/platter/scheduler/freq"
)

// LFU partitions requests by track modulo segments and walks the segments
// round-robin, always servicing the least-frequent track of the active
// segment. Frequencies are counted once from the initial queue and only ever
// consumed; switching segments moves no tracks.
func (s *scheduler) LFU(q queue.Queue, segments int) int64 {
	var total int64

	if segments < 1 {
		segments = constant.DefaultSegments
	}
	if q.IsEmpty() {
		return 0
	}
	ts := make([]freq.Table, segments)
	for i := range ts {
		ts[i] = freq.New()
	}
	for _, t := range q.Tracks() {
		ts[segment(t, segments)].Add(t)
	}
	active := segment(q.Front(), segments)
	for !q.IsEmpty() {
		if ts[active].IsEmpty() {
			active = (active + 1) % segments
			continue
		}
		t := ts[active].Min()
		ts[active].Take(t)
		q.RemoveAt(indexOf(q, t))
		total += s.service(t)
	}
	return total
}

func indexOf(q queue.Queue, t int) int {
	for i, n := 0, q.Len(); i < n; i++ {
		if q.At(i) == t {
			return i
		}
	}
	return -1
}

func segment(t, n int) int {
	s := t % n
	if s < 0 {
		s += n
	}
	return s
}
