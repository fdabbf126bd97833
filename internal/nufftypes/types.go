// Package nufftypes defines the shared type constraints for the
// table-interpolation kernels. It exists so that the root package and the
// internal packages can agree on one canonical definition without an
// import cycle.
package nufftypes

// Float is a type constraint for the floating-point element types supported
// by the interpolation kernels. Grid coefficients, tables, query coordinates
// and outputs all share one element type per plan.
type Float interface {
	~float32 | ~float64
}
