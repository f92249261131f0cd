package sum

import (
	"hash"
	"hash/fnv"
)

func Sum(h hash.Hash32, data []byte) uint32 {
	h.Reset()
	h.Write(data)
	return h.Sum32()
}

// Name hashes a file name for lock stripe selection.
func Name(name string) uint32 {
	return Sum(fnv.New32a(), []byte(name))
}
