package scenario

import (
	"fmt"
	"io/ioutil"

	"github.com/kelseyhightower/envconfig"
	"github.com/sofimaye/platter/constant"
	"github.com/sofimaye/platter/disk"
	"github.com/sofimaye/platter/errmsg"
	"github.com/sofimaye/platter/workload"
	"gopkg.in/yaml.v2"
)

const envVarPrefix = "PLATTER"

func Default() Scenario {
	w := workload.DefaultConfig()
	return Scenario{
		Tracks:          constant.DefaultTracks,
		SectorsPerTrack: constant.DefaultSectorsPerTrack,
		RotationDelay:   constant.DefaultRotationDelay,
		StartTrack:      constant.DefaultStartTrack,
		Segments:        constant.DefaultSegments,
		Queue:           []int{143, 86, 147, 91, 171, 19, 62, 96, 78, 9, 10},
		Policies:        []string{FCFS, SSTF, Look, LFU},
		MaxRequests:     constant.DefaultMaxRequests,
		CacheSize:       constant.DefaultCacheSize,
		Workload: Workload{
			Files:     w.Files,
			Blocks:    w.Blocks,
			Processes: w.Processes,
			Ops:       w.Ops,
			Seed:      w.Seed,
		},
	}
}

// Load builds a scenario from the defaults, then an optional YAML file, then
// PLATTER_* environment variables, later sources winning.
func Load(path string) (*Scenario, error) {
	s := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenario file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &s); err != nil {
			return nil, fmt.Errorf("unmarshaling scenario file: %w", err)
		}
	}
	if err := envconfig.Process(envVarPrefix, &s); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if s.Tracks < 1 || s.SectorsPerTrack < 1 {
		return fmt.Errorf("bad geometry: %d tracks, %d sectors per track", s.Tracks, s.SectorsPerTrack)
	}
	if s.RotationDelay < 0 {
		return fmt.Errorf("negative rotation delay: %d", s.RotationDelay)
	}
	if s.Segments < 1 {
		return fmt.Errorf("bad segment count: %d", s.Segments)
	}
	for _, p := range s.Policies {
		switch p {
		case FCFS, SSTF, Look, LFU:
		default:
			return fmt.Errorf("%w: %s", errmsg.BadPolicy, p)
		}
	}
	return nil
}

func (s *Scenario) Geometry() disk.Geometry {
	return disk.Geometry{
		Tracks:          s.Tracks,
		SectorsPerTrack: s.SectorsPerTrack,
		RotationDelay:   s.RotationDelay,
	}
}

func (s *Scenario) WorkloadConfig() workload.Config {
	return workload.Config{
		Files:     s.Workload.Files,
		Blocks:    s.Workload.Blocks,
		Processes: s.Workload.Processes,
		Ops:       s.Workload.Ops,
		Seed:      s.Workload.Seed,
	}
}
