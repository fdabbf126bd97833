// Package algonufft evaluates 2D separable, table-based convolutional
// interpolation on a periodic grid: the table-lookup kernel underneath
// nonuniform FFT gridding and degridding.
//
// A Plan binds the grid extents, one interpolation table per axis and a
// lookup order. Interp maps grid coefficients onto scattered query points;
// Adjoint scatters sample values back onto the grid with conjugated
// weights. Table construction and the surrounding transform stages (FFT,
// scaling) are outside this package.
//
// The hot loops perform no bounds checks. Slice lengths are validated at
// the call boundary, but the table support is a caller contract: every
// window lookup must land inside the J*L+1 samples. With the customary
// even J this holds for all query points; inputs outside the contract read
// out of table range and panic.
package algonufft

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-nufft/internal/kernels"
	"github.com/cwbudde/algo-nufft/internal/table"
)

// Order selects the table lookup variant, fixed per plan.
type Order int

const (
	// Order0 looks up the single tabulated sample nearest the fractional
	// offset (ties round away from zero).
	Order0 Order = iota

	// Order1 blends the two bracketing tabulated samples linearly.
	// Supported for real tables only.
	Order1
)

// Plan evaluates the separable interpolation for one fixed configuration of
// grid extents, axis tables and lookup order. The evaluator variant is
// resolved once at construction; Interp and Adjoint calls only validate
// slice lengths before entering the kernel.
//
// A Plan is safe for concurrent use by multiple goroutines as long as
// SetFlip and SetWorkers are not called concurrently with evaluation.
type Plan[T Float] struct {
	geom          kernels.Geometry
	order         Order
	complexTables bool
	workers       int

	real1, real2 table.Real[T]
	cplx1, cplx2 table.Complex[T]

	forward func(p *Plan[T], dstRe, dstIm, ckRe, ckIm, points []T)
	adjoint func(p *Plan[T], ckRe, ckIm, srcRe, srcIm, points []T)

	// zeroPlane substitutes for a nil imaginary grid plane; allocated on
	// first use, K1*K2 long.
	zeroOnce  sync.Once
	zeroPlane []T
}

// NewPlan creates a plan for a K1-by-K2 periodic grid (row-major, axis 1
// fast) with the given axis tables and lookup order.
//
// Returns ErrGridExtent if an extent is negative (zero is legal and yields
// empty results), ErrTableKind if the tables mix real and complex, and
// ErrNotImplemented for Order1 with complex tables.
func NewPlan[T Float](k1, k2 int, tab1, tab2 Table[T], order Order) (*Plan[T], error) {
	if k1 < 0 || k2 < 0 {
		return nil, ErrGridExtent
	}
	if tab1.re == nil || tab2.re == nil {
		return nil, ErrNilSlice
	}
	if tab1.IsComplex() != tab2.IsComplex() {
		return nil, ErrTableKind
	}
	if order != Order0 && order != Order1 {
		return nil, ErrNotImplemented
	}
	if order == Order1 && tab1.IsComplex() {
		return nil, ErrNotImplemented
	}

	p := &Plan[T]{
		geom: kernels.Geometry{
			K1: k1, K2: k2,
			J1: tab1.j, J2: tab2.j,
			L1: tab1.l, L2: tab2.l,
		},
		order:         order,
		complexTables: tab1.IsComplex(),
		workers:       runtime.GOMAXPROCS(0),
	}

	switch {
	case p.complexTables:
		p.cplx1 = table.NewComplex(tab1.re, tab1.im, tab1.j, tab1.l)
		p.cplx2 = table.NewComplex(tab2.re, tab2.im, tab2.j, tab2.l)
		p.forward = forwardComplex0[T]
		p.adjoint = adjointComplex0[T]
	case order == Order0:
		p.real1 = table.NewReal(tab1.re, tab1.j, tab1.l)
		p.real2 = table.NewReal(tab2.re, tab2.j, tab2.l)
		p.forward = forwardReal0[T]
		p.adjoint = adjointReal0[T]
	default:
		p.real1 = table.NewReal(tab1.re, tab1.j, tab1.l)
		p.real2 = table.NewReal(tab2.re, tab2.j, tab2.l)
		p.forward = forwardReal1[T]
		p.adjoint = adjointReal1[T]
	}

	return p, nil
}

// SetFlip enables or disables the per-axis sign flip: when set for an axis,
// an interpolation weight is negated whenever the query point's window
// wrapped an odd number of periods on that axis. Both flags default to off.
func (p *Plan[T]) SetFlip(flip1, flip2 bool) {
	p.geom.Flip1 = flip1
	p.geom.Flip2 = flip2
}

// SetWorkers sets the goroutine count for the parallel evaluator variant
// (complex tables, Order0). n <= 0 restores the default of
// runtime.GOMAXPROCS(0). The other variants always run sequentially.
func (p *Plan[T]) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p.workers = n
}

// Workers returns the worker count used by the parallel variant.
func (p *Plan[T]) Workers() int {
	return p.workers
}

// GridLen returns the number of grid coefficients, K1*K2.
func (p *Plan[T]) GridLen() int {
	return p.geom.K1 * p.geom.K2
}

func forwardComplex0[T Float](p *Plan[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	kernels.Forward2Complex0Parallel(p.geom, p.cplx1, p.cplx2, dstRe, dstIm, ckRe, ckIm, points, p.workers)
}

func forwardReal0[T Float](p *Plan[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	kernels.Forward2Real0(p.geom, p.real1, p.real2, dstRe, dstIm, ckRe, ckIm, points)
}

func forwardReal1[T Float](p *Plan[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	kernels.Forward2Real1(p.geom, p.real1, p.real2, dstRe, dstIm, ckRe, ckIm, points)
}

func adjointComplex0[T Float](p *Plan[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	kernels.Adjoint2Complex0(p.geom, p.cplx1, p.cplx2, ckRe, ckIm, srcRe, srcIm, points)
}

func adjointReal0[T Float](p *Plan[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	kernels.Adjoint2Real0(p.geom, p.real1, p.real2, ckRe, ckIm, srcRe, srcIm, points)
}

func adjointReal1[T Float](p *Plan[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	kernels.Adjoint2Real1(p.geom, p.real1, p.real2, ckRe, ckIm, srcRe, srcIm, points)
}
