package scheduler

import (
	"github.com/sofimaye/platter/disk"
	"github.com/sofimaye/platter/queue"
)

func New(g disk.Geometry, start int) *scheduler {
	return &scheduler{g: g, pos: start}
}

func (s *scheduler) Position() int {
	return s.pos
}

func (s *scheduler) Geometry() disk.Geometry {
	return s.g
}

// FCFS services the queue front to back in arrival order.
func (s *scheduler) FCFS(q queue.Queue) int64 {
	var total int64

	for !q.IsEmpty() {
		total += s.service(q.PopFront())
	}
	return total
}

// SSTF always services the remaining request closest to the head; on equal
// distance the earliest-queued request wins.
func (s *scheduler) SSTF(q queue.Queue) int64 {
	var total int64

	for !q.IsEmpty() {
		j := 0
		for i, n := 1, q.Len(); i < n; i++ {
			if distance(s.pos, q.At(i)) < distance(s.pos, q.At(j)) {
				j = i
			}
		}
		total += s.service(q.RemoveAt(j))
	}
	return total
}

func (s *scheduler) service(track int) int64 {
	ms := s.g.Seek(s.pos, track)
	s.pos = track
	return ms
}

func distance(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
