package disk

import (
	"github.com/sofimaye/platter/constant"
)

func DefaultGeometry() Geometry {
	return Geometry{
		Tracks:          constant.DefaultTracks,
		SectorsPerTrack: constant.DefaultSectorsPerTrack,
		RotationDelay:   constant.DefaultRotationDelay,
	}
}

// SeekTime returns the cost in ms of moving the head from current to target
// and servicing one request there: both per-track costs scale with the
// distance crossed, the rotation delay is charged once. Direction never
// matters.
func SeekTime(current, target, rotationDelay int) int64 {
	d := current - target
	if d < 0 {
		d = -d
	}
	return int64(d)*constant.TrackMoveCost + int64(d)*constant.TrackSettleCost + int64(rotationDelay)
}

// Seek is SeekTime with the geometry's own rotation delay.
func (g Geometry) Seek(current, target int) int64 {
	return SeekTime(current, target, g.RotationDelay)
}
