package queue

// Queue holds requested track numbers in arrival order. Duplicates are
// permitted. Scheduling policies consume a queue destructively; Clone is the
// copy step for callers that reuse one request list across policies.
type Queue interface {
	Len() int
	IsEmpty() bool
	Front() int
	At(int) int
	Push(int)
	PopFront() int
	RemoveAt(int) int
	Tracks() []int
	Clone() Queue
}

type queue struct {
	xs []int
}
