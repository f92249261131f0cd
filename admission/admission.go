package admission

import (
	"sync/atomic"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/constant"
)

func New(max int, log logger.Log) *gate {
	if max < 1 {
		max = constant.DefaultMaxRequests
	}
	return &gate{
		log:     log,
		permits: make(chan struct{}, max),
	}
}

func (g *gate) Do(u Unit) Outcome {
	select {
	case g.permits <- struct{}{}:
	default:
		atomic.AddUint64(&g.rejected, 1)
		g.log.Errorf("unit rejected: %d units in flight\n", cap(g.permits))
		return Rejected
	}
	defer func() { <-g.permits }()
	atomic.AddUint64(&g.admitted, 1)
	u.Run()
	return Admitted
}

func (g *gate) InFlight() int {
	return len(g.permits)
}

func (g *gate) Capacity() int {
	return cap(g.permits)
}

func (g *gate) Admitted() uint64 {
	return atomic.LoadUint64(&g.admitted)
}

func (g *gate) Rejected() uint64 {
	return atomic.LoadUint64(&g.rejected)
}
