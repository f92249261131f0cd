package queue

import (
	"reflect"
	"testing"
)

func TestQueueOrder(t *testing.T) {
	q := New(3, 1, 2)
	if q.Len() != 3 || q.IsEmpty() {
		t.Fatalf("wanted 3 elements; found %d", q.Len())
	}
	if q.Front() != 3 || q.At(2) != 2 {
		t.Fatalf("unexpected layout: %v", q.Tracks())
	}
	if got := q.PopFront(); got != 3 {
		t.Fatalf("PopFront: wanted 3; found %d", got)
	}
	q.Push(9)
	if !reflect.DeepEqual(q.Tracks(), []int{1, 2, 9}) {
		t.Fatalf("unexpected layout after push: %v", q.Tracks())
	}
}

func TestQueueRemoveAt(t *testing.T) {
	q := New(5, 6, 7, 8)
	if got := q.RemoveAt(1); got != 6 {
		t.Fatalf("RemoveAt(1): wanted 6; found %d", got)
	}
	if !reflect.DeepEqual(q.Tracks(), []int{5, 7, 8}) {
		t.Fatalf("order not preserved: %v", q.Tracks())
	}
	q.RemoveAt(0)
	q.RemoveAt(1)
	if got := q.RemoveAt(0); got != 7 || !q.IsEmpty() {
		t.Fatalf("queue not drained: %v", q.Tracks())
	}
}

func TestQueueClone(t *testing.T) {
	q := New(4, 2)
	c := q.Clone()
	q.PopFront()
	q.PopFront()
	if c.Len() != 2 || c.Front() != 4 {
		t.Fatalf("clone shares state: %v", c.Tracks())
	}
}

func TestQueueTracksCopy(t *testing.T) {
	q := New(1, 2, 3)
	xs := q.Tracks()
	xs[0] = 99
	if q.Front() != 1 {
		t.Fatalf("Tracks leaked internal storage: %v", q.Tracks())
	}
}
