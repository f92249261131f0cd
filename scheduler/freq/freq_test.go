package freq

import "testing"

func TestTable(t *testing.T) {
	tb := New()
	if !tb.IsEmpty() {
		t.Fatal("new table is not empty")
	}
	for _, track := range []int{5, 3, 5, 9} {
		tb.Add(track)
	}
	if tb.Len() != 3 {
		t.Fatalf("wanted 3 distinct tracks; found %d", tb.Len())
	}
	if got := tb.Count(5); got != 2 {
		t.Fatalf("Count(5): wanted 2; found %d", got)
	}

	// 3 and 9 both have count 1; 3 was seen first
	if got := tb.Min(); got != 3 {
		t.Fatalf("Min: wanted 3; found %d", got)
	}
	tb.Take(3)
	if got := tb.Min(); got != 9 {
		t.Fatalf("Min after taking 3: wanted 9; found %d", got)
	}
	tb.Take(9)

	// 5 still owes two instances
	tb.Take(5)
	if tb.IsEmpty() {
		t.Fatal("table empty with one instance of 5 outstanding")
	}
	if got := tb.Count(5); got != 1 {
		t.Fatalf("Count(5): wanted 1; found %d", got)
	}
	tb.Take(5)
	if !tb.IsEmpty() {
		t.Fatalf("table not drained: %d tracks left", tb.Len())
	}
}

func TestTakeUnknownTrack(t *testing.T) {
	tb := New()
	tb.Add(4)
	tb.Take(17)
	if tb.Len() != 1 || tb.Count(4) != 1 {
		t.Fatal("taking an unknown track changed the table")
	}
}
