package queue

func New(tracks ...int) *queue {
	q := &queue{xs: make([]int, len(tracks))}
	copy(q.xs, tracks)
	return q
}

func (q *queue) Len() int {
	return len(q.xs)
}

func (q *queue) IsEmpty() bool {
	return len(q.xs) == 0
}

func (q *queue) Front() int {
	return q.xs[0]
}

func (q *queue) At(i int) int {
	return q.xs[i]
}

func (q *queue) Push(t int) {
	q.xs = append(q.xs, t)
}

func (q *queue) PopFront() int {
	t := q.xs[0]
	q.xs = q.xs[1:]
	return t
}

func (q *queue) RemoveAt(i int) int {
	t := q.xs[i]
	q.xs = append(q.xs[:i], q.xs[i+1:]...)
	return t
}

func (q *queue) Tracks() []int {
	xs := make([]int, len(q.xs))
	copy(xs, q.xs)
	return xs
}

func (q *queue) Clone() Queue {
	return New(q.xs...)
}
