package cache

import "sync"

// Cache buffers block contents keyed by file name and block index. Writes go
// through to the backing store before they land here, so an entry always
// holds the last committed content. A capacity is configured and reported
// but never enforced: entries are never evicted.
type Cache interface {
	Put(string, int, string)
	Get(string, int) (string, bool)
	Len() int
	Cap() int
}

type key struct {
	name  string
	index int
}

type cache struct {
	sync.RWMutex
	limit int
	mp    map[key]string
}
