package ghx

import (
	"fmt"
	"sort"
)

// PipeSpec is a U-tube pipe of the catalog. Diameters are in inches.
type PipeSpec struct {
	NominalSize   float64
	OuterDiameter float64
	InnerDiameter float64
}

// SDR-11 HDPE pipe, nominal size -> outer / inner diameter, in
func pipeCatalog() map[float64]PipeSpec {
	return map[float64]PipeSpec{
		0.75: {NominalSize: 0.75, OuterDiameter: 1.050, InnerDiameter: 0.859},
		1.0:  {NominalSize: 1.0, OuterDiameter: 1.315, InnerDiameter: 1.076},
		1.25: {NominalSize: 1.25, OuterDiameter: 1.660, InnerDiameter: 1.358},
	}
}

// LookupPipe returns the catalog entry for a nominal pipe size, in.
func LookupPipe(nominal float64) (PipeSpec, error) {
	p, ok := pipeCatalog()[nominal]
	if !ok {
		return PipeSpec{}, fmt.Errorf("%w: nominal size %g in (want one of %v)",
			ErrUnsupportedPipeSize, nominal, PipeSizes())
	}
	return p, nil
}

// LookupPipeByOuterDiameter returns the catalog entry with the given outer diameter, in.
func LookupPipeByOuterDiameter(od float64) (PipeSpec, error) {
	for _, p := range pipeCatalog() {
		if p.OuterDiameter == od {
			return p, nil
		}
	}
	return PipeSpec{}, fmt.Errorf("%w: outer diameter %g in", ErrUnsupportedPipeSize, od)
}

// PipeSizes lists the nominal sizes of the catalog in ascending order.
func PipeSizes() []float64 {
	var sizes []float64
	for s := range pipeCatalog() {
		sizes = append(sizes, s)
	}
	sort.Float64s(sizes)
	return sizes
}
