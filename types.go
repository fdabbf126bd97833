package algonufft

import "github.com/cwbudde/algo-nufft/internal/nufftypes"

// Float is the type constraint for element types supported by the
// interpolation plans. The canonical definition is in internal/nufftypes.
type Float = nufftypes.Float
