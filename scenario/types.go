package scenario

// Policy names accepted in scenario files and on the command line.
const (
	FCFS = "fcfs"
	SSTF = "sstf"
	Look = "look"
	LFU  = "lfu"
)

// Workload sizes the synthetic process mix replayed against the file
// surface.
type Workload struct {
	Files     int   `envconfig:"PLATTER_WORKLOAD_FILES" yaml:"files"`
	Blocks    int   `envconfig:"PLATTER_WORKLOAD_BLOCKS" yaml:"blocks"`
	Processes int   `envconfig:"PLATTER_WORKLOAD_PROCESSES" yaml:"processes"`
	Ops       int   `envconfig:"PLATTER_WORKLOAD_OPS" yaml:"ops"`
	Seed      int64 `envconfig:"PLATTER_WORKLOAD_SEED" yaml:"seed"`
}

// Scenario is one simulator run: the geometry, the request queue, the
// policies to compare, and the file-surface knobs.
type Scenario struct {
	Tracks          int      `envconfig:"PLATTER_TRACKS" yaml:"tracks"`
	SectorsPerTrack int      `envconfig:"PLATTER_SECTORS_PER_TRACK" yaml:"sectorsPerTrack"`
	RotationDelay   int      `envconfig:"PLATTER_ROTATION_DELAY" yaml:"rotationDelay"`
	StartTrack      int      `envconfig:"PLATTER_START_TRACK" yaml:"startTrack"`
	Segments        int      `envconfig:"PLATTER_SEGMENTS" yaml:"segments"`
	Queue           []int    `envconfig:"PLATTER_QUEUE" yaml:"queue"`
	Policies        []string `envconfig:"PLATTER_POLICIES" yaml:"policies"`
	MaxRequests     int      `envconfig:"PLATTER_MAX_REQUESTS" yaml:"maxRequests"`
	CacheSize       int      `envconfig:"PLATTER_CACHE_SIZE" yaml:"cacheSize"`
	Workload        Workload `yaml:"workload"`
}
