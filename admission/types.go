package admission

import (
	"github.com/nnsgmsone/damrey/logger"
)

// Outcome reports what the gate did with a unit of work.
type Outcome int

const (
	Rejected Outcome = iota
	Admitted
)

// Unit is one admissible piece of work, typically a process replaying file
// requests.
type Unit interface {
	Run()
}

// Gate bounds how many units may be in flight at once. Admission never
// blocks: a unit arriving at capacity is rejected outright and not run. The
// permit of an admitted unit is returned even if the unit panics. Gate is
// thread-safe.
type Gate interface {
	Do(Unit) Outcome

	InFlight() int
	Capacity() int
	Admitted() uint64
	Rejected() uint64
}

type gate struct {
	admitted uint64
	rejected uint64
	permits  chan struct{}
	log      logger.Log
}

func (o Outcome) String() string {
	if o == Admitted {
		return "admitted"
	}
	return "rejected"
}
