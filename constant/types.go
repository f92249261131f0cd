package constant

const (
	TrackMoveCost   = 10  // ms per track crossed by the arm
	TrackSettleCost = 130 // ms per track for head settling
)

const (
	DefaultTracks          = 500
	DefaultSectorsPerTrack = 100
	DefaultRotationDelay   = 8 // ms per serviced request
	DefaultStartTrack      = 0
)

const (
	DefaultSegments = 3
)

const (
	DefaultMaxRequests = 20
	DefaultCacheSize   = 250
	DefaultLockStripes = 32
)
