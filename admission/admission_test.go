package admission

import (
	"io"
	"testing"

	"github.com/nnsgmsone/damrey/logger"
)

type flag struct {
	ran bool
}

func (f *flag) Run() {
	f.ran = true
}

type blocker struct {
	started chan struct{}
	release chan struct{}
}

func (b *blocker) Run() {
	close(b.started)
	<-b.release
}

type bomb struct{}

func (bomb) Run() {
	panic("boom")
}

func TestGateBoundary(t *testing.T) {
	g := New(1, logger.New(io.Discard, "test"))
	if g.Capacity() != 1 {
		t.Fatalf("Capacity: wanted 1; found %d", g.Capacity())
	}

	b := &blocker{started: make(chan struct{}), release: make(chan struct{})}
	first := make(chan Outcome)
	go func() { first <- g.Do(b) }()
	<-b.started
	if g.InFlight() != 1 {
		t.Fatalf("InFlight: wanted 1; found %d", g.InFlight())
	}

	// the gate is full: the second unit must be turned away unrun
	second := &flag{}
	if got := g.Do(second); got != Rejected {
		t.Fatalf("second unit: wanted Rejected; found %v", got)
	}
	if second.ran {
		t.Fatal("rejected unit was run")
	}

	close(b.release)
	if got := <-first; got != Admitted {
		t.Fatalf("first unit: wanted Admitted; found %v", got)
	}

	third := &flag{}
	if got := g.Do(third); got != Admitted {
		t.Fatalf("third unit: wanted Admitted; found %v", got)
	}
	if !third.ran {
		t.Fatal("admitted unit was not run")
	}

	if g.Admitted() != 2 || g.Rejected() != 1 {
		t.Fatalf("totals: wanted 2 admitted, 1 rejected; found %d, %d",
			g.Admitted(), g.Rejected())
	}
	if g.InFlight() != 0 {
		t.Fatalf("InFlight after completion: wanted 0; found %d", g.InFlight())
	}
}

func TestPermitReleasedOnPanic(t *testing.T) {
	g := New(1, logger.New(io.Discard, "test"))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("unit panic did not propagate")
			}
		}()
		g.Do(bomb{})
	}()

	u := &flag{}
	if got := g.Do(u); got != Admitted || !u.ran {
		t.Fatalf("permit leaked after panic: %v, ran=%v", got, u.ran)
	}
}

func TestCapacityNormalized(t *testing.T) {
	g := New(0, logger.New(io.Discard, "test"))
	if g.Capacity() != 20 {
		t.Fatalf("Capacity: wanted the 20 default; found %d", g.Capacity())
	}
}

func TestOutcomeString(t *testing.T) {
	if Admitted.String() != "admitted" || Rejected.String() != "rejected" {
		t.Fatalf("unexpected outcome names: %v, %v", Admitted, Rejected)
	}
}
