package locker

import (
	"sync"

	"github.com/sofimaye/platter/constant"
	"github.com/sofimaye/platter/sum"
)

func New(n int) *table {
	if n < 1 {
		n = constant.DefaultLockStripes
	}
	return &table{lkrs: make([]sync.RWMutex, n)}
}

func (t *table) Get(name string) Locker {
	return &t.lkrs[sum.Name(name)%uint32(len(t.lkrs))]
}

func (t *table) Stripes() int {
	return len(t.lkrs)
}
