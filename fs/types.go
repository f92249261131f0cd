package fs

import (
	"io"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/admission"
	"github.com/sofimaye/platter/cache"
	"github.com/sofimaye/platter/locker"
	"github.com/sofimaye/platter/scheduler"
	"github.com/sofimaye/platter/store"
)

/*
FS provides the simulated file surface: named block files kept in the store
and read through a write-through buffer cache, with process admission
bounded by a gate. FS is thread-safe; mutations of one file are serialized
by its lock stripe. Block operations consume no simulated disk time; the
scheduler is carried for the request-queue side of a run.
*/
type FS interface {
	CreateFile(string, int) error
	WriteBlock(string, int, string) error
	ReadBlock(string, int) (string, error)

	Process(admission.Unit) admission.Outcome

	Files() int
	CacheLen() int
	CacheCap() int
	Gate() admission.Gate
	Scheduler() scheduler.Scheduler
}

type Config struct {
	MaxRequests int // in-flight units bound
	CacheSize   int
	LockStripes int
	LogWriter   io.Writer
	Scheduler   scheduler.Scheduler
}

type fs struct {
	s    store.Store
	c    cache.Cache
	t    locker.Table
	g    admission.Gate
	log  logger.Log
	schd scheduler.Scheduler
}
