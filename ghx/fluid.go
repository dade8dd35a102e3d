package ghx

import "fmt"

// FluidType is the heat exchange fluid circulating in the loop.
type FluidType string

const (
	FluidWater  FluidType = "water"
	FluidGlycol FluidType = "glycol"
)

// GlycolKind is the antifreeze added to water.
type GlycolKind string

const (
	GlycolPropylene GlycolKind = "propylene-glycol"
	GlycolEthylene  GlycolKind = "ethylene-glycol"
)

// FluidSpec describes the loop fluid. The zero value is water.
type FluidSpec struct {
	Type     FluidType
	Glycol   GlycolKind
	Fraction float64 // glycol mass fraction, -
}

// Water is plain water.
func Water() FluidSpec {
	return FluidSpec{Type: FluidWater}
}

// NewFluid builds a glycol solution. A zero fraction is water.
func NewFluid(kind GlycolKind, fraction float64) (FluidSpec, error) {
	if fraction == 0 {
		return Water(), nil
	}
	if fraction < 0 || fraction >= 1 {
		return FluidSpec{}, fmt.Errorf("%w: glycol fraction %g", ErrInvalidInput, fraction)
	}
	switch kind {
	case GlycolPropylene, GlycolEthylene:
	default:
		return FluidSpec{}, fmt.Errorf("%w: glycol kind %q", ErrInvalidInput, kind)
	}
	return FluidSpec{Type: FluidGlycol, Glycol: kind, Fraction: fraction}, nil
}

// IsGlycol reports whether the fluid contains antifreeze.
func (f FluidSpec) IsGlycol() bool {
	return f.Type == FluidGlycol && f.Fraction > 0
}

func (f FluidSpec) String() string {
	if !f.IsGlycol() {
		return string(FluidWater)
	}
	return fmt.Sprintf("%s %.0f%%", f.Glycol, f.Fraction*100)
}
