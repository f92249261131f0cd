package cache

import (
	"github.com/sofimaye/platter/constant"
)

func New(limit int) *cache {
	if limit < 1 {
		limit = constant.DefaultCacheSize
	}
	return &cache{limit: limit, mp: make(map[key]string)}
}

func (c *cache) Put(name string, index int, data string) {
	c.Lock()
	c.mp[key{name, index}] = data
	c.Unlock()
}

func (c *cache) Get(name string, index int) (string, bool) {
	c.RLock()
	v, ok := c.mp[key{name, index}]
	c.RUnlock()
	return v, ok
}

func (c *cache) Len() int {
	c.RLock()
	n := len(c.mp)
	c.RUnlock()
	return n
}

func (c *cache) Cap() int {
	return c.limit
}
