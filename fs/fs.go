package fs

import (
	"os"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/admission"
	"github.com/sofimaye/platter/cache"
	"github.com/sofimaye/platter/constant"
	"github.com/sofimaye/platter/disk"
	"github.com/sofimaye/platter/locker"
	"github.com/sofimaye/platter/scheduler"
	"github.com/sofimaye/platter/store"
)

func DefaultConfig() Config {
	return Config{
		MaxRequests: constant.DefaultMaxRequests,
		CacheSize:   constant.DefaultCacheSize,
		LockStripes: constant.DefaultLockStripes,
		LogWriter:   os.Stderr,
	}
}

func New(cfg Config) *fs {
	log := logger.New(cfg.LogWriter, "platter")
	schd := cfg.Scheduler
	if schd == nil {
		schd = scheduler.New(disk.DefaultGeometry(), constant.DefaultStartTrack)
	}
	return &fs{
		log:  log,
		schd: schd,
		s:    store.New(),
		c:    cache.New(cfg.CacheSize),
		t:    locker.New(cfg.LockStripes),
		g:    admission.New(cfg.MaxRequests, log),
	}
}

func (f *fs) CreateFile(name string, blocks int) error {
	lkr := f.t.Get(name)
	lkr.Lock()
	defer lkr.Unlock()
	return f.s.Create(name, blocks)
}

func (f *fs) WriteBlock(name string, i int, data string) error {
	lkr := f.t.Get(name)
	lkr.Lock()
	defer lkr.Unlock()
	if err := f.s.Write(name, i, data); err != nil {
		return err
	}
	f.c.Put(name, i, data)
	return nil
}

func (f *fs) ReadBlock(name string, i int) (string, error) {
	lkr := f.t.Get(name)
	lkr.RLock()
	defer lkr.RUnlock()
	if v, ok := f.c.Get(name, i); ok {
		return v, nil
	}
	return f.s.Read(name, i)
}

func (f *fs) Process(u admission.Unit) admission.Outcome {
	return f.g.Do(u)
}

func (f *fs) Files() int {
	return f.s.Files()
}

func (f *fs) CacheLen() int {
	return f.c.Len()
}

func (f *fs) CacheCap() int {
	return f.c.Cap()
}

func (f *fs) Gate() admission.Gate {
	return f.g
}

func (f *fs) Scheduler() scheduler.Scheduler {
	return f.schd
}
