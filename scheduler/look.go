package scheduler

import (
	"github.com/sofimaye/platter/queue"
)

// Look sweeps upward from the head, servicing the nearest strictly greater
// request each step, and reverses free of charge once the sweep runs out.
// When neither direction holds a strict candidate, the remaining requests
// all sit under the head and are serviced in arrival order at rotation cost
// only.
func (s *scheduler) Look(q queue.Queue) int64 {
	var total int64

	up := true
	for !q.IsEmpty() {
		j := s.scan(q, up)
		if j < 0 {
			up = !up // reversing moves no tracks
			j = s.scan(q, up)
		}
		if j < 0 {
			total += s.service(q.PopFront())
			continue
		}
		total += s.service(q.RemoveAt(j))
	}
	return total
}

func (s *scheduler) scan(q queue.Queue, up bool) int {
	j := -1
	for i, n := 0, q.Len(); i < n; i++ {
		t := q.At(i)
		switch {
		case up && t <= s.pos:
		case !up && t >= s.pos:
		case j < 0 || distance(s.pos, t) < distance(s.pos, q.At(j)):
			j = i
		}
	}
	return j
}
