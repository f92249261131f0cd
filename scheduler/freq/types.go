package freq

// Table counts how many instances of each track a segment still owes,
// ordered by first occurrence in the request queue. Counts are fixed when
// the table is filled and only ever consumed.
type Table interface {
	Len() int
	IsEmpty() bool
	Add(int)
	Take(int)
	Min() int
	Count(int) int
}

type element struct {
	n     int // remaining instances
	track int
}

type table struct {
	xs []*element
	mp map[int]*element
}
