package ghx

import (
	"fmt"
	"math"
)

// LengthMultiplier corrects the required bore length for a configuration.
// It is the hook for a borehole thermal interference model.
type LengthMultiplier interface {
	Multiplier(cfg BoreConfig) float64
}

// NoInterference applies no correction.
type NoInterference struct{}

func (NoInterference) Multiplier(BoreConfig) float64 { return 1.0 }

// BoreLengthInput gathers everything the bore length estimate depends on.
type BoreLengthInput struct {
	Weather      WeatherStatistics
	Design       DesignTemperatures
	Resistances  ThermalResistances
	Capacity     CapacityRequirement
	HeatingEIR   float64
	CoolingEIR   float64
	DesignDeltaT float64 // F
	Config       BoreConfig
	Multiplier   LengthMultiplier // nil is NoInterference
}

// BoreLength is the required bore length.
type BoreLength struct {
	NominalHeating float64 `json:"nominal_heating"` // ft/ton
	NominalCooling float64 `json:"nominal_cooling"` // ft/ton
	Heating        float64 `json:"heating"`         // ft
	Cooling        float64 `json:"cooling"`         // ft
	Total          float64 `json:"total"`           // ft
}

/*
Design month runtime fractions of the heat pump.

	Args:
		w: weather design statistics

	Returns:
		(1) heating runtime fraction, -
		(2) cooling runtime fraction, -

	Notes:
		Both are at least 0.25, a minimum duty cycle even in mild months.
*/
func runtimeFractions(w WeatherStatistics) (rtfHeat float64, rtfCool float64, err error) {
	htd := heatingIndoorDB - w.HeatingDesignDB
	ctd := w.CoolingDesignDB - coolingIndoorDB
	if htd <= 0 {
		return 0, 0, fmt.Errorf("%w: heating design temperature difference %g F", ErrDegenerateSizingInput, htd)
	}
	if ctd <= 0 {
		return 0, 0, fmt.Errorf("%w: cooling design temperature difference %g F", ErrDegenerateSizingInput, ctd)
	}

	rtfHeat = math.Max(rtfMin, (heatingBalance-w.ColdestMonthAvgDB())/htd)
	rtfCool = math.Max(rtfMin, (w.HottestMonthAvgDB()-coolingBalance)/ctd)
	return rtfHeat, rtfCool, nil
}

/*
Required bore length for the heating and cooling design conditions.

	Args:
		in: resistances, design temperatures, capacities and EIRs

	Returns:
		nominal lengths (ft/ton), scaled lengths (ft) and the governing total, ft

	Notes:
		A non-positive temperature difference between the ground and the loop
		fluid is an error, never an Inf or NaN length.
*/
func EstimateBoreLength(in BoreLengthInput) (BoreLength, error) {
	rtfHeat, rtfCool, err := runtimeFractions(in.Weather)
	if err != nil {
		return BoreLength{}, err
	}

	annual := in.Weather.AnnualAvgDB
	dtHeat := annual - (2.0*in.Design.HWDesign-in.DesignDeltaT)/2.0
	dtCool := (2.0*in.Design.CHWDesign+in.DesignDeltaT)/2.0 - annual
	if !(dtHeat > 0) {
		return BoreLength{}, fmt.Errorf("%w: heating ground-to-fluid temperature difference %g F",
			ErrDegenerateSizingInput, dtHeat)
	}
	if !(dtCool > 0) {
		return BoreLength{}, fmt.Errorf("%w: cooling fluid-to-ground temperature difference %g F",
			ErrDegenerateSizingInput, dtCool)
	}

	r := in.Resistances
	var bl BoreLength
	bl.NominalHeating = (1.0 - in.HeatingEIR) * (r.Borehole + r.Ground*rtfHeat) / dtHeat * btuhPerTon
	bl.NominalCooling = (1.0 + in.CoolingEIR) * (r.Borehole + r.Ground*rtfCool) / dtCool * btuhPerTon

	bl.Heating = bl.NominalHeating * in.Capacity.HeatingTons()
	bl.Cooling = bl.NominalCooling * in.Capacity.CoolingTons()

	m := in.Multiplier
	if m == nil {
		m = NoInterference{}
	}
	bl.Total = math.Max(bl.Heating, bl.Cooling) * m.Multiplier(in.Config)

	if math.IsNaN(bl.Total) || math.IsInf(bl.Total, 0) || bl.Total < 0 {
		return BoreLength{}, fmt.Errorf("%w: bore length %g ft", ErrDegenerateSizingInput, bl.Total)
	}
	return bl, nil
}
