package locker

import (
	"sync"
	"testing"
)

func TestSameNameSameStripe(t *testing.T) {
	tb := New(8)
	if tb.Get("file-0") != tb.Get("file-0") {
		t.Fatal("one name mapped onto two stripes")
	}
	if tb.Stripes() != 8 {
		t.Fatalf("Stripes: wanted 8; found %d", tb.Stripes())
	}
}

func TestStripesNormalized(t *testing.T) {
	if got := New(0).Stripes(); got != 32 {
		t.Fatalf("Stripes: wanted the 32 default; found %d", got)
	}
}

func TestStripeSerializesWriters(t *testing.T) {
	tb := New(4)
	cnt := 0
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lkr := tb.Get("file-0")
			lkr.Lock()
			cnt++
			lkr.Unlock()
		}()
	}
	wg.Wait()
	if cnt != 64 {
		t.Fatalf("lost updates under the stripe lock: %d of 64", cnt)
	}
}
