package freq

func New() *table {
	return &table{
		xs: []*element{},
		mp: make(map[int]*element),
	}
}

func (t *table) Len() int {
	return len(t.xs)
}

func (t *table) IsEmpty() bool {
	return len(t.xs) == 0
}

func (t *table) Add(track int) {
	if e, ok := t.mp[track]; ok {
		e.n++
		return
	}
	e := &element{n: 1, track: track}
	t.mp[track] = e
	t.xs = append(t.xs, e)
}

// Min returns the live track with the lowest remaining count; ties keep the
// earliest first occurrence. The table must not be empty.
func (t *table) Min() int {
	e := t.xs[0]
	for _, x := range t.xs[1:] {
		if x.n < e.n {
			e = x
		}
	}
	return e.track
}

func (t *table) Take(track int) {
	e, ok := t.mp[track]
	if !ok {
		return
	}
	if e.n = e.n - 1; e.n == 0 {
		delete(t.mp, track)
		for i, x := range t.xs {
			if x == e {
				t.xs = append(t.xs[:i], t.xs[i+1:]...)
				break
			}
		}
	}
}

func (t *table) Count(track int) int {
	if e, ok := t.mp[track]; ok {
		return e.n
	}
	return 0
}
