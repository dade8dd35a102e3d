package ghx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeatherStatistics are the design conditions the engine needs, all in F.
type WeatherStatistics struct {
	HeatingDesignDB float64     `json:"heating_design_db" yaml:"heating_design_db"`
	CoolingDesignDB float64     `json:"cooling_design_db" yaml:"cooling_design_db"`
	MonthlyAvgDB    [12]float64 `json:"monthly_avg_db" yaml:"monthly_avg_db"`
	AnnualAvgDB     float64     `json:"annual_avg_db" yaml:"annual_avg_db"`
}

// ColdestMonthAvgDB is the lowest monthly average dry-bulb, F.
func (w WeatherStatistics) ColdestMonthAvgDB() float64 {
	return floats.Min(w.MonthlyAvgDB[:])
}

// HottestMonthAvgDB is the highest monthly average dry-bulb, F.
func (w WeatherStatistics) HottestMonthAvgDB() float64 {
	return floats.Max(w.MonthlyAvgDB[:])
}

func (w WeatherStatistics) validate() error {
	vs := append([]float64{w.HeatingDesignDB, w.CoolingDesignDB, w.AnnualAvgDB}, w.MonthlyAvgDB[:]...)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weather statistic %v", ErrInvalidInput, v)
		}
	}
	return nil
}

// DesignTemperatures are the entering fluid temperatures of the heat exchanger, F.
type DesignTemperatures struct {
	CHWDesign float64 `json:"chw_design"`
	HWDesign  float64 `json:"hw_design"`
}

/*
Entering fluid design temperatures.

	Args:
		w: weather design statistics
		fluid: loop fluid

	Returns:
		cooling (chw) and heating (hw) design temperatures, F

	Notes:
		The coil model is only valid above 85 F in cooling and above 45 F
		(35 F with antifreeze) in heating, so the estimates are clamped there.
*/
func EstimateDesignTemperatures(w WeatherStatistics, fluid FluidSpec) DesignTemperatures {
	hwMin := hwDesignMinWater
	if fluid.IsGlycol() {
		hwMin = hwDesignMinGlycol
	}

	return DesignTemperatures{
		CHWDesign: floats.Max([]float64{
			chwDesignMin,
			w.CoolingDesignDB - chwDesignOffset,
			w.AnnualAvgDB + annualAvgOffset,
		}),
		HWDesign: floats.Max([]float64{
			hwMin,
			w.HeatingDesignDB + hwDesignOffset,
			w.AnnualAvgDB - annualAvgOffset,
		}),
	}
}
