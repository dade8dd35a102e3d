package ghx

import "github.com/ctessum/unit"

// resistance per unit length, m K / W
var meterKelvinPerWatt = unit.Dimensions{
	unit.TemperatureDim: 1,
	unit.MassDim:        -1,
	unit.LengthDim:      -1,
	unit.TimeDim:        3,
}

// hr-ft-F/Btu -> m-K/W
const siPerIPResistance = 0.577789317

// SIReport is the sizing result in SI units, for simulation engines that take SI input.
type SIReport struct {
	BoreDepth   *unit.Unit // m
	TotalLength *unit.Unit // m
	LoopFlow    *unit.Unit // m3/s
	CHWDesign   *unit.Unit // K
	HWDesign    *unit.Unit // K
	PipeR       *unit.Unit // m K/W
	BoreholeR   *unit.Unit // m K/W
	GroundR     *unit.Unit // m K/W
}

func fahrenheitToKelvin(f float64) float64 {
	return (f-32.0)/1.8 + 273.15
}

// SI converts the result at the output boundary.
func (r *SizingResult) SI() SIReport {
	return SIReport{
		BoreDepth:   unit.New(r.Layout.BoreDepth*metersPerFt, unit.Meter),
		TotalLength: unit.New(r.Layout.TotalLength()*metersPerFt, unit.Meter),
		LoopFlow:    unit.New(r.LoopFlow*m3sPerGPM, unit.Meter3PerSecond),
		CHWDesign:   unit.New(fahrenheitToKelvin(r.DesignTemperatures.CHWDesign), unit.Kelvin),
		HWDesign:    unit.New(fahrenheitToKelvin(r.DesignTemperatures.HWDesign), unit.Kelvin),
		PipeR:       unit.New(r.Resistances.Pipe*siPerIPResistance, meterKelvinPerWatt),
		BoreholeR:   unit.New(r.Resistances.Borehole*siPerIPResistance, meterKelvinPerWatt),
		GroundR:     unit.New(r.Resistances.Ground*siPerIPResistance, meterKelvinPerWatt),
	}
}
