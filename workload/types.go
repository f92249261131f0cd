package workload

import (
	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/admission"
	"github.com/sofimaye/platter/fs"
)

const (
	OpRead = iota
	OpWrite
)

type Op struct {
	T     int // OpRead or OpWrite
	File  string
	Block int
	Data  string
}

// Process is one admissible unit replaying its ops against the file surface
// in order. Op errors are logged and counted, never fatal; counters are
// valid once Run returns.
type Process interface {
	admission.Unit

	ID() string
	Ops() []Op
	Reads() int
	Writes() int
	Errs() int
}

type Config struct {
	Files     int
	Blocks    int // per file
	Processes int
	Ops       int // per process
	Seed      int64
}

type process struct {
	id     string
	reads  int
	writes int
	errs   int
	ops    []Op
	f      fs.FS
	log    logger.Log
}
