package disk

// Geometry describes a simulated platter. The seek model never range-checks
// targets against it: out-of-range tracks are costed by distance alone.
type Geometry struct {
	Tracks          int
	SectorsPerTrack int
	RotationDelay   int // ms charged once per serviced request
}
