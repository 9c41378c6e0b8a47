package core

import "testing"

func TestNewAlphaRunsClampsNonPositiveWidth(t *testing.T) {
	ar := NewAlphaRuns(0)
	if ar.Width() != 1 {
		t.Fatalf("Width() = %d, want 1", ar.Width())
	}
}

func TestAddAccumulatesCoverage(t *testing.T) {
	ar := NewAlphaRuns(20)
	ar.Add(5, 0, 10, 0)

	for x := 5; x < 15; x++ {
		if got := ar.GetAlpha(x); got != 255 {
			t.Fatalf("GetAlpha(%d) = %d, want 255", x, got)
		}
	}
	if got := ar.GetAlpha(4); got != 0 {
		t.Fatalf("GetAlpha(4) = %d, want 0", got)
	}
	if got := ar.GetAlpha(15); got != 0 {
		t.Fatalf("GetAlpha(15) = %d, want 0", got)
	}
}

func TestAddAccumulatesAcrossOverlappingCalls(t *testing.T) {
	ar := NewAlphaRuns(10)
	ar.Add(0, 0, 10, 0)
	ar.Add(0, 0, 10, 0)

	// Two full-coverage passes over the same span must saturate at 255,
	// not wrap, thanks to catchOverflow's 256->255 correction.
	for x := 0; x < 10; x++ {
		if got := ar.GetAlpha(x); got != 255 {
			t.Fatalf("GetAlpha(%d) = %d, want 255 (saturated)", x, got)
		}
	}
}

func TestResetClearsPreviousCoverage(t *testing.T) {
	ar := NewAlphaRuns(10)
	ar.Add(0, 0, 10, 0)
	ar.Reset()

	if !ar.IsEmpty() {
		t.Fatalf("IsEmpty() = false after Reset, want true")
	}
	if got := ar.GetAlpha(5); got != 0 {
		t.Fatalf("GetAlpha(5) = %d after Reset, want 0", got)
	}
}

func TestCopyToWritesAccumulatedCoverage(t *testing.T) {
	ar := NewAlphaRuns(8)
	ar.Add(2, 0, 4, 0)

	dst := make([]uint8, 8)
	ar.CopyTo(dst)

	want := []uint8{0, 0, 255, 255, 255, 255, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestIterYieldsOnlyNonZeroRuns(t *testing.T) {
	ar := NewAlphaRuns(10)
	ar.Add(3, 0, 3, 0)

	got := map[int]uint8{}
	for x, alpha := range ar.Iter() {
		got[x] = alpha
	}

	if len(got) != 3 {
		t.Fatalf("Iter yielded %d pixels, want 3", len(got))
	}
	for x := 3; x < 6; x++ {
		if got[x] != 255 {
			t.Fatalf("Iter[%d] = %d, want 255", x, got[x])
		}
	}
}
