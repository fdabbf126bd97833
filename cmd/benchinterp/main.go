// benchinterp measures interpolation throughput across grid sizes and
// evaluator variants.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	algonufft "github.com/cwbudde/algo-nufft"
)

type benchCase struct {
	name  string
	order algonufft.Order
	cplx  bool
}

func main() {
	var (
		sizeList = flag.String("sizes", "64,128,256,512", "comma-separated grid extents (square grids)")
		points   = flag.Int("points", 65536, "query points per run")
		j        = flag.Int("j", 6, "window width per axis")
		l        = flag.Int("l", 64, "table subdivisions per grid unit")
		iters    = flag.Int("iters", 20, "benchmark iterations")
		warmup   = flag.Int("warmup", 3, "warmup iterations")
		workers  = flag.Int("workers", 0, "worker count for the parallel variant (0 = GOMAXPROCS)")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("points=%d J=%d L=%d iters=%d warmup=%d workers=%d\n",
		*points, *j, *l, *iters, *warmup, effectiveWorkers(*workers))
	fmt.Printf("%8s  %10s  %14s  %14s\n", "K", "variant", "ns/op", "Mpts/s")

	cases := []benchCase{
		{name: "complex0", order: algonufft.Order0, cplx: true},
		{name: "real0", order: algonufft.Order0},
		{name: "real1", order: algonufft.Order1},
	}

	for _, k := range sizes {
		for _, bc := range cases {
			nsPerOp, ok := benchmarkCase(rnd, k, *points, *j, *l, *iters, *warmup, *workers, bc)
			if !ok {
				continue
			}

			mpts := float64(*points) / nsPerOp * 1e3
			fmt.Printf("%8d  %10s  %14.1f  %14.2f\n", k, bc.name, nsPerOp, mpts)
		}
	}
}

func benchmarkCase(rnd *rand.Rand, k, m, j, l, iters, warmup, workers int, bc benchCase) (float64, bool) {
	tab1, tab2, err := makeTables(rnd, j, l, bc.cplx)
	if err != nil {
		return 0, false
	}

	plan, err := algonufft.NewPlan(k, k, tab1, tab2, bc.order)
	if err != nil {
		return 0, false
	}
	plan.SetWorkers(workers)

	gridRe := randSlice(rnd, k*k)
	gridIm := randSlice(rnd, k*k)

	pts := make([]float64, 2*m)
	for i := 0; i < m; i++ {
		pts[i] = float64(k) * rnd.Float64()
		pts[m+i] = float64(k) * rnd.Float64()
	}

	dstRe := make([]float64, m)
	dstIm := make([]float64, m)

	for i := 0; i < warmup; i++ {
		if err := plan.Interp(dstRe, dstIm, gridRe, gridIm, pts); err != nil {
			return 0, false
		}
	}

	runtime.GC()

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := plan.Interp(dstRe, dstIm, gridRe, gridIm, pts); err != nil {
			return 0, false
		}
	}
	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters), true
}

func makeTables(rnd *rand.Rand, j, l int, cplx bool) (algonufft.Table[float64], algonufft.Table[float64], error) {
	n := j*l + 1
	if !cplx {
		tab1, err := algonufft.NewTable(randSlice(rnd, n), j, l)
		if err != nil {
			return tab1, tab1, err
		}
		tab2, err := algonufft.NewTable(randSlice(rnd, n), j, l)
		return tab1, tab2, err
	}

	tab1, err := algonufft.NewComplexTable(randSlice(rnd, n), randSlice(rnd, n), j, l)
	if err != nil {
		return tab1, tab1, err
	}
	tab2, err := algonufft.NewComplexTable(randSlice(rnd, n), randSlice(rnd, n), j, l)
	return tab1, tab2, err
}

func randSlice(rnd *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 2*rnd.Float64() - 1
	}
	return s
}

func effectiveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
