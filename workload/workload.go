package workload

import (
	"fmt"
	"math/rand"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/fs"
)

func DefaultConfig() Config {
	return Config{
		Files:     5,
		Blocks:    8,
		Processes: 40,
		Ops:       12,
		Seed:      1,
	}
}

// Generate creates cfg.Files block files on f and builds cfg.Processes
// processes of cfg.Ops random reads and writes over them. The same seed
// always yields the same workload.
func Generate(f fs.FS, cfg Config, log logger.Log) ([]Process, error) {
	cfg = cfg.normalize()
	r := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Files; i++ {
		if err := f.CreateFile(FileName(i), cfg.Blocks); err != nil {
			return nil, err
		}
	}
	ps := make([]Process, 0, cfg.Processes)
	for i := 0; i < cfg.Processes; i++ {
		ops := make([]Op, 0, cfg.Ops)
		for j := 0; j < cfg.Ops; j++ {
			op := Op{
				File:  FileName(r.Intn(cfg.Files)),
				Block: r.Intn(cfg.Blocks),
			}
			if r.Intn(2) == 1 {
				op.T = OpWrite
				op.Data = fmt.Sprintf("blk-%d-%d", i, j)
			}
			ops = append(ops, op)
		}
		ps = append(ps, New(f, ops, log))
	}
	return ps, nil
}

func FileName(i int) string {
	return fmt.Sprintf("file-%d", i)
}

func (cfg Config) normalize() Config {
	d := DefaultConfig()
	if cfg.Files < 1 {
		cfg.Files = d.Files
	}
	if cfg.Blocks < 1 {
		cfg.Blocks = d.Blocks
	}
	if cfg.Processes < 0 {
		cfg.Processes = d.Processes
	}
	if cfg.Ops < 0 {
		cfg.Ops = d.Ops
	}
	return cfg
}
