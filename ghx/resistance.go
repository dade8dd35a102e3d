package ghx

import (
	"fmt"
	"math"
	"strings"
)

// ShankSpacing is the position of the U-tube legs inside the borehole.
type ShankSpacing string

const (
	// ShankSpacingA: legs touching each other.
	ShankSpacingA ShankSpacing = "A"
	// ShankSpacingB: legs equally spaced. Default.
	ShankSpacingB ShankSpacing = "B"
	// ShankSpacingC: legs against the borehole wall.
	ShankSpacingC ShankSpacing = "C"
)

/*
Empirical grout resistance shape factors of the U-tube position.

	Returns:
		(1) beta0, -
		(2) beta1, -

	Notes:
		Paul (1996). Unknown spacings fall back to B.
*/
func (s ShankSpacing) betas() (beta0 float64, beta1 float64) {
	switch s {
	case ShankSpacingA:
		return 20.10, -0.94467
	case ShankSpacingC:
		return 21.91, -0.3796
	default:
		return 17.4427, -0.6052
	}
}

// ParseShankSpacing parses "A", "B" or "C". An empty string is B.
func ParseShankSpacing(s string) (ShankSpacing, error) {
	switch sp := ShankSpacing(strings.ToUpper(strings.TrimSpace(s))); sp {
	case "":
		return ShankSpacingB, nil
	case ShankSpacingA, ShankSpacingB, ShankSpacingC:
		return sp, nil
	default:
		return "", fmt.Errorf("%w: shank spacing %q", ErrInvalidInput, s)
	}
}

// ThermalResistances per foot of borehole, hr-ft-F/Btu.
type ThermalResistances struct {
	Pipe     float64 `json:"pipe_r"`
	Borehole float64 `json:"borehole_r"`
	Ground   float64 `json:"ground_r"`
}

/*
Conduction resistance of the pipe wall.

	Args:
		od: outer diameter, in
		id: inner diameter, in
		k: pipe conductivity, Btu/hr-ft-F

	Returns:
		pipe resistance, hr-ft-F/Btu
*/
func PipeResistance(od, id, k float64) float64 {
	return math.Log(od/id) / (2.0 * math.Pi * k)
}

/*
Borehole resistance (grout plus half of the two-leg pipe resistance).

	Args:
		boreD: borehole diameter, in
		pipeOD: pipe outer diameter, in
		kGrout: grout conductivity, Btu/hr-ft-F
		pipeR: pipe resistance, hr-ft-F/Btu
		shank: U-tube position

	Returns:
		borehole resistance, hr-ft-F/Btu

	Notes:
		Convection inside the pipe is neglected; against GLHEPRO it is small.
*/
func BoreholeResistance(boreD, pipeOD, kGrout, pipeR float64, shank ShankSpacing) float64 {
	beta0, beta1 := shank.betas()
	groutR := 1.0 / (kGrout * beta0 * math.Pow(boreD/pipeOD, beta1))
	return groutR + pipeR/2.0
}

/*
Ground resistance between boreholes.

	Args:
		spacing: bore spacing, ft
		boreD: borehole diameter, in
		kGround: ground conductivity, Btu/hr-ft-F

	Returns:
		ground resistance, hr-ft-F/Btu
*/
func GroundResistance(spacing, boreD, kGround float64) float64 {
	return math.Log(12.0*spacing/boreD) / (2.0 * math.Pi * kGround)
}

// CalcResistances evaluates all three resistances for one bore field.
func CalcResistances(req BoreFieldRequest, pipe PipeSpec) ThermalResistances {
	pipeR := PipeResistance(pipe.OuterDiameter, pipe.InnerDiameter, req.PipeConductivity)
	return ThermalResistances{
		Pipe:     pipeR,
		Borehole: BoreholeResistance(req.Diameter, pipe.OuterDiameter, req.GroutConductivity, pipeR, req.ShankSpacing),
		Ground:   GroundResistance(req.Spacing, req.Diameter, req.GroundConductivity),
	}
}
