package workload

import (
	"github.com/google/uuid"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/fs"
)

func New(f fs.FS, ops []Op, log logger.Log) *process {
	return &process{
		f:   f,
		log: log,
		ops: ops,
		id:  uuid.NewString(),
	}
}

func (p *process) ID() string {
	return p.id
}

func (p *process) Ops() []Op {
	ops := make([]Op, len(p.ops))
	copy(ops, p.ops)
	return ops
}

func (p *process) Run() {
	for _, op := range p.ops {
		switch op.T {
		case OpWrite:
			if err := p.f.WriteBlock(op.File, op.Block, op.Data); err != nil {
				p.errs++
				p.log.Errorf("process %s: write %s[%d]: %v\n", p.id, op.File, op.Block, err)
				continue
			}
			p.writes++
		default:
			if _, err := p.f.ReadBlock(op.File, op.Block); err != nil {
				p.errs++
				p.log.Errorf("process %s: read %s[%d]: %v\n", p.id, op.File, op.Block, err)
				continue
			}
			p.reads++
		}
	}
}

func (p *process) Reads() int {
	return p.reads
}

func (p *process) Writes() int {
	return p.writes
}

func (p *process) Errs() int {
	return p.errs
}
