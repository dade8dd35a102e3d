package ghx

import (
	"fmt"
	"math"
)

// CapacityRequirement is the rated capacity of the equipment being sized, Btu/h.
type CapacityRequirement struct {
	Heating float64 `json:"heating_capacity" yaml:"heating_capacity"`
	Cooling float64 `json:"cooling_capacity" yaml:"cooling_capacity"`
}

// HeatingTons is the heating capacity in tons.
func (c CapacityRequirement) HeatingTons() float64 { return c.Heating / btuhPerTon }

// CoolingTons is the cooling capacity in tons.
func (c CapacityRequirement) CoolingTons() float64 { return c.Cooling / btuhPerTon }

// HoleCount is either auto-sized (the zero value) or fixed by the user.
type HoleCount struct {
	fixed bool
	n     int
}

// AutoHoles lets the sizer choose the number of bore holes.
func AutoHoles() HoleCount { return HoleCount{} }

// FixedHoles fixes the number of bore holes.
func FixedHoles(n int) HoleCount { return HoleCount{fixed: true, n: n} }

func (h HoleCount) IsAuto() bool { return !h.fixed }

// Count is the fixed hole count, 0 when auto-sized.
func (h HoleCount) Count() int { return h.n }

func (h HoleCount) String() string {
	if h.IsAuto() {
		return "auto"
	}
	return fmt.Sprint(h.n)
}

// BoreDepth is either auto-sized (the zero value) or fixed by the user, ft.
type BoreDepth struct {
	fixed bool
	ft    float64
}

// AutoDepth lets the sizer choose the bore depth.
func AutoDepth() BoreDepth { return BoreDepth{} }

// FixedDepth fixes the bore depth, ft.
func FixedDepth(ft float64) BoreDepth { return BoreDepth{fixed: true, ft: ft} }

func (d BoreDepth) IsAuto() bool { return !d.fixed }

// Feet is the fixed depth, 0 when auto-sized.
func (d BoreDepth) Feet() float64 { return d.ft }

func (d BoreDepth) String() string {
	if d.IsAuto() {
		return "auto"
	}
	return fmt.Sprint(d.ft)
}

// BoreFieldRequest holds the bore field inputs, either user-given or auto.
type BoreFieldRequest struct {
	Config BoreConfig
	Holes  HoleCount
	Depth  BoreDepth

	Spacing            float64 // bore spacing, ft
	Diameter           float64 // borehole diameter, in
	GroundConductivity float64 // Btu/hr-ft-F
	GroutConductivity  float64 // Btu/hr-ft-F
	GroundDiffusivity  float64 // ft2/hr
	DesignDeltaT       float64 // loop design temperature difference, F

	PipeSize         float64 // nominal, in
	PipeConductivity float64 // Btu/hr-ft-F
	ShankSpacing     ShankSpacing
}

// DefaultBoreFieldRequest is a fully auto-sized bore field with typical
// residential geometry and soil properties.
func DefaultBoreFieldRequest() BoreFieldRequest {
	return BoreFieldRequest{
		Config:             ConfigAuto,
		Spacing:            20.0,
		Diameter:           5.0,
		GroundConductivity: 0.6,
		GroutConductivity:  0.4,
		GroundDiffusivity:  0.0208,
		DesignDeltaT:       10.0,
		PipeSize:           0.75,
		PipeConductivity:   0.23,
		ShankSpacing:       ShankSpacingB,
	}
}

func (r BoreFieldRequest) validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"bore spacing", r.Spacing},
		{"bore diameter", r.Diameter},
		{"ground conductivity", r.GroundConductivity},
		{"grout conductivity", r.GroutConductivity},
		{"ground diffusivity", r.GroundDiffusivity},
		{"design delta T", r.DesignDeltaT},
		{"pipe conductivity", r.PipeConductivity},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, p.name, p.v)
		}
	}
	if !r.Holes.IsAuto() && r.Holes.Count() < 1 {
		return fmt.Errorf("%w: bore holes must be at least 1, got %d", ErrInvalidInput, r.Holes.Count())
	}
	if !r.Depth.IsAuto() && !(r.Depth.Feet() > 0) {
		return fmt.Errorf("%w: bore depth must be positive, got %g", ErrInvalidInput, r.Depth.Feet())
	}
	if _, err := ParseBoreConfig(string(r.Config)); err != nil {
		return err
	}
	return nil
}
