package scheduler

import (
	"github.com/sofimaye/platter/disk"
	"github.com/sofimaye/platter/queue"
)

/*
Scheduler services track request queues against one persistent arm position:
every policy starts where the previous call left the head and leaves it on
the last track serviced. Policies drain the queue they are handed; clone it
first to reuse a request list. Scheduler is not thread-safe.
*/
type Scheduler interface {
	FCFS(queue.Queue) int64
	SSTF(queue.Queue) int64
	Look(queue.Queue) int64
	LFU(queue.Queue, int) int64

	Position() int
	Geometry() disk.Geometry
}

type scheduler struct {
	pos int
	g   disk.Geometry
}
