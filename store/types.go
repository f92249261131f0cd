package store

import "sync"

// Store keeps named files as fixed-length arrays of block contents. Blocks
// never written hold the empty marker "". Files cannot be deleted or
// resized.
type Store interface {
	Create(string, int) error
	Write(string, int, string) error
	Read(string, int) (string, error)
	Blocks(string) (int, error)
	Files() int
}

type store struct {
	sync.Mutex
	mp map[string][]string
}
