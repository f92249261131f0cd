package locker

import "sync"

type Locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// Table hands out stripe locks by file name. Names hash onto a fixed set of
// stripes, so the same name always yields the same lock and mutations of one
// file are serialized.
type Table interface {
	Get(string) Locker
	Stripes() int
}

type table struct {
	lkrs []sync.RWMutex
}
