package algonufft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertCloseSlices(t *testing.T, gotRe, gotIm, wantRe, wantIm []float64, tol float64) {
	t.Helper()

	if len(gotRe) != len(wantRe) || len(gotIm) != len(wantIm) {
		t.Fatalf("length mismatch: got (%d, %d), want (%d, %d)",
			len(gotRe), len(gotIm), len(wantRe), len(wantIm))
	}

	for i := range gotRe {
		if math.Abs(gotRe[i]-wantRe[i]) > tol || math.Abs(gotIm[i]-wantIm[i]) > tol {
			t.Fatalf("element %d: got (%v, %v), want (%v, %v)",
				i, gotRe[i], gotIm[i], wantRe[i], wantIm[i])
		}
	}
}

func deltaTable(t *testing.T) Table[float64] {
	t.Helper()

	tab, err := NewTable([]float64{0, 1, 0}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	return tab
}

func randFloats(rnd *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 2*rnd.Float64() - 1
	}
	return s
}
