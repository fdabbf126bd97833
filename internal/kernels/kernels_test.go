package kernels

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-nufft/internal/table"
)

// The reference evaluator below walks the same window as the kernels but
// indexes an explicitly replicated copy of the grid (5 periods per axis,
// centered) instead of wrapping indices. Sign flips are baked into the
// replication. Agreement between kernel and reference is exactly the
// periodic-wraparound property the kernels promise.

type weightFunc func(p float64) (re, im float64)

func replicate(g Geometry, ckRe, ckIm []float64) (repRe, repIm []float64, w1 int) {
	w1 = 5 * g.K1
	w2 := 5 * g.K2
	repRe = make([]float64, w1*w2)
	repIm = make([]float64, w1*w2)

	for i2 := 0; i2 < w2; i2++ {
		k2 := i2 - 2*g.K2
		k2mod := ((k2 % g.K2) + g.K2) % g.K2
		wrap2 := (k2 - k2mod) / g.K2

		for i1 := 0; i1 < w1; i1++ {
			k1 := i1 - 2*g.K1
			k1mod := ((k1 % g.K1) + g.K1) % g.K1
			wrap1 := (k1 - k1mod) / g.K1

			sign := 1.0
			if g.Flip1 && wrap1%2 != 0 {
				sign = -sign
			}
			if g.Flip2 && wrap2%2 != 0 {
				sign = -sign
			}

			src := k2mod*g.K1 + k1mod
			repRe[i2*w1+i1] = sign * ckRe[src]
			repIm[i2*w1+i1] = sign * ckIm[src]
		}
	}

	return repRe, repIm, w1
}

func refEval(g Geometry, s1, s2 weightFunc, repRe, repIm []float64, w1 int, t1, t2 float64) (float64, float64) {
	koff1 := 1 + int(math.Floor(t1-float64(g.J1)/2))
	k2 := 1 + int(math.Floor(t2-float64(g.J2)/2))

	var sum2r, sum2i float64
	for jj2 := 0; jj2 < g.J2; jj2++ {
		c2r, c2i := s2((t2 - float64(k2)) * float64(g.L2))
		row := (k2 + 2*g.K2) * w1

		var sum1r, sum1i float64
		k1 := koff1
		for jj1 := 0; jj1 < g.J1; jj1++ {
			c1r, c1i := s1((t1 - float64(k1)) * float64(g.L1))
			kk := row + k1 + 2*g.K1
			sum1r += c1r*repRe[kk] - c1i*repIm[kk]
			sum1i += c1r*repIm[kk] + c1i*repRe[kk]
			k1++
		}

		sum2r += c2r*sum1r - c2i*sum1i
		sum2i += c2r*sum1i + c2i*sum1r
		k2++
	}

	return sum2r, sum2i
}

func randSlice(rnd *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 2*rnd.Float64() - 1
	}
	return s
}

func randPoints(rnd *rand.Rand, m, k1, k2 int) []float64 {
	pts := make([]float64, 2*m)
	for i := 0; i < m; i++ {
		// Points outside [0, K) exercise the wraparound on both sides.
		pts[i] = float64(k1) * (3*rnd.Float64() - 1)
		pts[m+i] = float64(k2) * (3*rnd.Float64() - 1)
	}
	return pts
}

func testGeometries() []Geometry {
	return []Geometry{
		{K1: 8, K2: 8, J1: 4, J2: 4, L1: 4, L2: 4},
		{K1: 8, K2: 5, J1: 4, J2: 2, L1: 3, L2: 5},
		{K1: 3, K2: 9, J1: 6, J2: 4, L1: 2, L2: 2},
		{K1: 8, K2: 8, J1: 4, J2: 4, L1: 4, L2: 4, Flip1: true},
		{K1: 6, K2: 7, J1: 4, J2: 6, L1: 2, L2: 3, Flip1: true, Flip2: true},
	}
}

func TestForward2Real0AgainstReplicatedGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(101))

	for _, g := range testGeometries() {
		h1 := randSlice(rnd, g.J1*g.L1+1)
		h2 := randSlice(rnd, g.J2*g.L2+1)
		tab1 := table.NewReal(h1, g.J1, g.L1)
		tab2 := table.NewReal(h2, g.J2, g.L2)

		ckRe := randSlice(rnd, g.K1*g.K2)
		ckIm := randSlice(rnd, g.K1*g.K2)

		const m = 40
		pts := randPoints(rnd, m, g.K1, g.K2)
		dstRe := make([]float64, m)
		dstIm := make([]float64, m)
		Forward2Real0(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)

		repRe, repIm, w1 := replicate(g, ckRe, ckIm)
		s1 := func(p float64) (float64, float64) { return tab1.Sample0(p), 0 }
		s2 := func(p float64) (float64, float64) { return tab2.Sample0(p), 0 }

		for mm := 0; mm < m; mm++ {
			wantRe, wantIm := refEval(g, s1, s2, repRe, repIm, w1, pts[mm], pts[m+mm])
			if math.Abs(dstRe[mm]-wantRe) > 1e-12 || math.Abs(dstIm[mm]-wantIm) > 1e-12 {
				t.Fatalf("geometry %+v point %d: got (%g, %g), want (%g, %g)",
					g, mm, dstRe[mm], dstIm[mm], wantRe, wantIm)
			}
		}
	}
}

func TestForward2Real1AgainstReplicatedGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(202))

	for _, g := range testGeometries() {
		h1 := randSlice(rnd, g.J1*g.L1+1)
		h2 := randSlice(rnd, g.J2*g.L2+1)
		tab1 := table.NewReal(h1, g.J1, g.L1)
		tab2 := table.NewReal(h2, g.J2, g.L2)

		ckRe := randSlice(rnd, g.K1*g.K2)
		ckIm := randSlice(rnd, g.K1*g.K2)

		const m = 40
		pts := randPoints(rnd, m, g.K1, g.K2)
		dstRe := make([]float64, m)
		dstIm := make([]float64, m)
		Forward2Real1(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)

		repRe, repIm, w1 := replicate(g, ckRe, ckIm)
		s1 := func(p float64) (float64, float64) { return tab1.Sample1(p), 0 }
		s2 := func(p float64) (float64, float64) { return tab2.Sample1(p), 0 }

		for mm := 0; mm < m; mm++ {
			wantRe, wantIm := refEval(g, s1, s2, repRe, repIm, w1, pts[mm], pts[m+mm])
			if math.Abs(dstRe[mm]-wantRe) > 1e-12 || math.Abs(dstIm[mm]-wantIm) > 1e-12 {
				t.Fatalf("geometry %+v point %d: got (%g, %g), want (%g, %g)",
					g, mm, dstRe[mm], dstIm[mm], wantRe, wantIm)
			}
		}
	}
}

func TestForward2Complex0AgainstReplicatedGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(303))

	for _, g := range testGeometries() {
		h1re := randSlice(rnd, g.J1*g.L1+1)
		h1im := randSlice(rnd, g.J1*g.L1+1)
		h2re := randSlice(rnd, g.J2*g.L2+1)
		h2im := randSlice(rnd, g.J2*g.L2+1)
		tab1 := table.NewComplex(h1re, h1im, g.J1, g.L1)
		tab2 := table.NewComplex(h2re, h2im, g.J2, g.L2)

		ckRe := randSlice(rnd, g.K1*g.K2)
		ckIm := randSlice(rnd, g.K1*g.K2)

		const m = 40
		pts := randPoints(rnd, m, g.K1, g.K2)
		dstRe := make([]float64, m)
		dstIm := make([]float64, m)
		Forward2Complex0(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)

		repRe, repIm, w1 := replicate(g, ckRe, ckIm)
		s1 := func(p float64) (float64, float64) { return tab1.Sample0(p) }
		s2 := func(p float64) (float64, float64) { return tab2.Sample0(p) }

		for mm := 0; mm < m; mm++ {
			wantRe, wantIm := refEval(g, s1, s2, repRe, repIm, w1, pts[mm], pts[m+mm])
			if math.Abs(dstRe[mm]-wantRe) > 1e-12 || math.Abs(dstIm[mm]-wantIm) > 1e-12 {
				t.Fatalf("geometry %+v point %d: got (%g, %g), want (%g, %g)",
					g, mm, dstRe[mm], dstIm[mm], wantRe, wantIm)
			}
		}
	}
}

// TestDeltaTableIdentity: delta tables make the evaluator return the grid
// coefficient under each on-node query point.
func TestDeltaTableIdentity(t *testing.T) {
	t.Parallel()

	g := Geometry{K1: 4, K2: 4, J1: 2, J2: 2, L1: 1, L2: 1}
	delta := []float64{0, 1, 0}
	tab1 := table.NewReal(delta, 2, 1)
	tab2 := table.NewReal(delta, 2, 1)

	ckRe := make([]float64, 16)
	ckIm := make([]float64, 16)
	for i := range ckRe {
		ckRe[i] = float64(i + 1)
		ckIm[i] = -float64(i + 1)
	}

	var pts []float64
	var want []float64
	for k2 := 0; k2 < 4; k2++ {
		for k1 := 0; k1 < 4; k1++ {
			pts = append(pts, float64(k1))
			want = append(want, ckRe[k2*4+k1])
		}
	}
	for k2 := 0; k2 < 4; k2++ {
		for k1 := 0; k1 < 4; k1++ {
			pts = append(pts, float64(k2))
		}
	}

	m := len(want)
	dstRe := make([]float64, m)
	dstIm := make([]float64, m)
	Forward2Real0(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)

	for mm := range want {
		if dstRe[mm] != want[mm] || dstIm[mm] != -want[mm] {
			t.Errorf("point %d: got (%g, %g), want (%g, %g)",
				mm, dstRe[mm], dstIm[mm], want[mm], -want[mm])
		}
	}

	// Order 1 on the same delta table gives the same on-node values.
	Forward2Real1(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)
	for mm := range want {
		if dstRe[mm] != want[mm] {
			t.Errorf("order 1, point %d: got %g, want %g", mm, dstRe[mm], want[mm])
		}
	}
}

// TestPeriodicity: shifting a query point by a full period leaves the
// result unchanged (no flip), per the end-to-end example in the contract.
func TestPeriodicity(t *testing.T) {
	t.Parallel()

	g := Geometry{K1: 4, K2: 4, J1: 2, J2: 2, L1: 1, L2: 1}
	delta := []float64{0, 1, 0}
	tab1 := table.NewReal(delta, 2, 1)
	tab2 := table.NewReal(delta, 2, 1)

	ckRe := make([]float64, 16)
	ckIm := make([]float64, 16)
	ckRe[0] = 1

	pts := []float64{0, 4, -4, 0, 0, 8, 0, -8}
	dstRe := make([]float64, 4)
	dstIm := make([]float64, 4)
	Forward2Real0(g, tab1, tab2, dstRe, dstIm, ckRe, ckIm, pts)

	for mm := 0; mm < 4; mm++ {
		if dstRe[mm] != 1 || dstIm[mm] != 0 {
			t.Errorf("point %d: got (%g, %g), want (1, 0)", mm, dstRe[mm], dstIm[mm])
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	t.Parallel()

	g := Geometry{K1: 4, K2: 4, J1: 2, J2: 2, L1: 1, L2: 1}
	delta := []float64{0, 1, 0}
	tab1 := table.NewReal(delta, 2, 1)
	tab2 := table.NewReal(delta, 2, 1)
	ck := make([]float64, 16)

	// M = 0: nothing written, nothing panics.
	Forward2Real0(g, tab1, tab2, nil, nil, ck, ck, nil)
	Forward2Real1(g, tab1, tab2, nil, nil, ck, ck, nil)

	ctab1 := table.NewComplex(delta, make([]float64, 3), 2, 1)
	ctab2 := table.NewComplex(delta, make([]float64, 3), 2, 1)
	Forward2Complex0(g, ctab1, ctab2, nil, nil, ck, ck, nil)
	Forward2Complex0Parallel(g, ctab1, ctab2, nil, nil, ck, ck, nil, 4)
}
