package errmsg

import "errors"

var (
	DuplicateFile = errors.New("file already exists")
	UnknownFile   = errors.New("unknown file")
	BadBlockIndex = errors.New("block index out of range")
	BadBlockCount = errors.New("negative block count")
	BadPolicy     = errors.New("unknown scheduling policy")
)
