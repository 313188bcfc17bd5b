package random

import "testing"

func TestDeterminism(t *testing.T) {
	a := NewSource(12345)
	b := NewSource(12345)

	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverge at draw %d", i)
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSource(42)
	first := []float64{s.Next(), s.Next(), s.Next()}

	s.Next()
	s.Reset(42)

	for i, want := range first {
		if got := s.Next(); got != want {
			t.Errorf("draw %d after reset: got %v, want %v", i, got, want)
		}
	}
}

func TestRange(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestIntn(t *testing.T) {
	s := NewSource(99)
	for i := 0; i < 10000; i++ {
		v := s.Intn(17)
		if v < 0 || v >= 17 {
			t.Fatalf("draw %d out of range: %d", i, v)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := true
	for i := 0; i < 16; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical prefixes")
	}
}
