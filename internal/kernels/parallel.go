package kernels

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-nufft/internal/nufftypes"
	"github.com/cwbudde/algo-nufft/internal/table"
)

// Below this many query points the goroutine spawn and private-buffer cost
// dominates the evaluation itself and the sequential loop wins.
const parallelThreshold = 64

// accumState is the only state shared between workers: the claim counter
// for dynamic index assignment and the lock serializing the merge phase.
// The pad keeps the hot counter and the lock on separate cache lines.
type accumState struct {
	next atomic.Int64
	_    cpu.CacheLinePad
	mu   sync.Mutex
}

// Forward2Complex0Parallel evaluates the complex-table, 0th-order variant
// across workers goroutines. Each worker claims query-point indices
// dynamically from a shared counter, accumulates into a private full-length
// output buffer, and merges it into dst by element-wise addition under the
// merge lock. The inputs are shared read-only; dst is zeroed up front so the
// merged result fully overwrites it.
func Forward2Complex0Parallel[T nufftypes.Float](g Geometry, h1, h2 table.Complex[T], dstRe, dstIm, ckRe, ckIm, points []T, workers int) {
	m := len(dstRe)
	if workers > m {
		workers = m
	}
	if workers <= 1 || m < parallelThreshold {
		Forward2Complex0(g, h1, h2, dstRe, dstIm, ckRe, ckIm, points)
		return
	}

	for i := range dstRe {
		dstRe[i] = 0
		dstIm[i] = 0
	}

	st := new(accumState)

	var wg sync.WaitGroup
	for w := 0; w < workers-1; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			complex0Worker(g, h1, h2, dstRe, dstIm, ckRe, ckIm, points, st)
		}()
	}
	complex0Worker(g, h1, h2, dstRe, dstIm, ckRe, ckIm, points, st)
	wg.Wait()
}

func complex0Worker[T nufftypes.Float](g Geometry, h1, h2 table.Complex[T], dstRe, dstIm, ckRe, ckIm, points []T, st *accumState) {
	m := len(dstRe)
	priRe := make([]T, m)
	priIm := make([]T, m)

	for {
		mm := int(st.next.Add(1)) - 1
		if mm >= m {
			break
		}
		priRe[mm], priIm[mm] = evalComplex0(g, h1, h2, ckRe, ckIm, points[mm], points[m+mm])
	}

	st.mu.Lock()
	for i := range priRe {
		dstRe[i] += priRe[i]
		dstIm[i] += priIm[i]
	}
	st.mu.Unlock()
}
