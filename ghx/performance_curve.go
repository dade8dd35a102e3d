package ghx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TemperatureScale is the temperature unit of converted curve inputs.
type TemperatureScale string

const (
	Kelvin  TemperatureScale = "K"
	Celsius TemperatureScale = "C"
)

func (s TemperatureScale) offset() float64 {
	if s == Celsius {
		return 0
	}
	return 273.15
}

// Biquadratic is f(T, T') = c0 + c1 T + c2 T^2 + c3 T' + c4 T'^2 + c5 T T'.
type Biquadratic [6]float64

// Eval evaluates the curve.
func (b Biquadratic) Eval(x, y float64) float64 {
	return b[0] + b[1]*x + b[2]*x*x + b[3]*y + b[4]*y*y + b[5]*x*y
}

/*
Linear map of the six coefficients under T_ip = a T + b.

	Args:
		scale: temperature unit of the converted curve

	Returns:
		6x6 matrix M with c_si = M c_ip

	Notes:
		a = 1.8 and b = 32 - 1.8 * offset, offset 273.15 K or 0 C.
*/
func substitution(scale TemperatureScale) *mat.Dense {
	a := 1.8
	b := 32.0 - 1.8*scale.offset()
	return mat.NewDense(6, 6, []float64{
		1, b, b * b, b, b * b, b * b,
		0, a, 2 * a * b, 0, 0, a * b,
		0, 0, a * a, 0, 0, 0,
		0, 0, 0, a, 2 * a * b, a * b,
		0, 0, 0, 0, a * a, 0,
		0, 0, 0, 0, 0, a * a,
	})
}

// ToSI converts a curve fit in F into one taking temperatures on the given scale.
func (b Biquadratic) ToSI(scale TemperatureScale) Biquadratic {
	var out mat.VecDense
	out.MulVec(substitution(scale), mat.NewVecDense(6, b[:]))

	var c Biquadratic
	for i := range c {
		c[i] = out.AtVec(i)
	}
	return c
}

// ToIP converts a curve taking temperatures on the given scale back to F.
func (b Biquadratic) ToIP(scale TemperatureScale) (Biquadratic, error) {
	var out mat.VecDense
	if err := out.SolveVec(substitution(scale), mat.NewVecDense(6, b[:])); err != nil {
		return Biquadratic{}, fmt.Errorf("ghx: inverting curve substitution: %w", err)
	}

	var c Biquadratic
	for i := range c {
		c[i] = out.AtVec(i)
	}
	return c, nil
}

// HeatPumpCurves are the performance curves of a water-to-air heat pump, fit in F
// against entering air and entering water temperature.
type HeatPumpCurves struct {
	CoolingCapacity Biquadratic `json:"cooling_capacity" yaml:"cooling_capacity"`
	CoolingPower    Biquadratic `json:"cooling_power" yaml:"cooling_power"`
	HeatingCapacity Biquadratic `json:"heating_capacity" yaml:"heating_capacity"`
	HeatingPower    Biquadratic `json:"heating_power" yaml:"heating_power"`
}

// ToSI converts all four curves.
func (h HeatPumpCurves) ToSI(scale TemperatureScale) HeatPumpCurves {
	return HeatPumpCurves{
		CoolingCapacity: h.CoolingCapacity.ToSI(scale),
		CoolingPower:    h.CoolingPower.ToSI(scale),
		HeatingCapacity: h.HeatingCapacity.ToSI(scale),
		HeatingPower:    h.HeatingPower.ToSI(scale),
	}
}

/*
ISO 13256-1 fan and pump power adjustments.

	Returns:
		(1) fan adjustment, kW per Btu/h, 400 cfm/ton against 0.5 in. w.g.
		(2) pump adjustment, kW per Btu/h, 3 gpm/ton against 11 ft w.g.
*/
func isoAdjustments() (fan float64, pump float64) {
	fan = (400.0 / btuhPerTon) * m3sPerCFM * 1000.0 * 0.35 * 249.0 / 300.0
	pump = (gpmPerTon / btuhPerTon) * m3sPerGPM * 1000.0 * 6.0 * 2990.0 / 3.0 / 1000.0
	return fan, pump
}

// CoolingEIR converts a rated EER, Btu/Wh, into a cooling energy input ratio
// with the rating's fan and pump power removed.
func CoolingEIR(eer float64) (float64, error) {
	if !(eer > 0) {
		return 0, fmt.Errorf("%w: EER must be positive, got %g", ErrInvalidInput, eer)
	}
	fan, pump := isoAdjustments()
	eir := (1.0 - eer*(fan+pump)) / (eer * (1.0 + fan*btuPerWh)) * btuPerWh
	if !(eir > 0) {
		return 0, fmt.Errorf("%w: EER %g gives cooling EIR %g", ErrInvalidInput, eer, eir)
	}
	return eir, nil
}

// HeatingEIR converts a rated COP into a heating energy input ratio with the
// rating's fan and pump power removed.
func HeatingEIR(cop float64) (float64, error) {
	if !(cop > 0) {
		return 0, fmt.Errorf("%w: COP must be positive, got %g", ErrInvalidInput, cop)
	}
	fan, pump := isoAdjustments()
	eir := (1.0 - cop*(fan+pump)) / (cop * (1.0 - fan))
	if !(eir > 0) || eir >= 1 {
		return 0, fmt.Errorf("%w: COP %g gives heating EIR %g", ErrInvalidInput, cop, eir)
	}
	return eir, nil
}
