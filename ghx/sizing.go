package ghx

import (
	"fmt"
	"math"
)

// Input is everything needed to size one ground heat exchanger.
type Input struct {
	Name      string
	Weather   WeatherStatistics
	Capacity  CapacityRequirement
	EER       float64 // rated cooling efficiency, Btu/Wh
	COP       float64 // rated heating efficiency, -
	Fluid     FluidSpec
	BoreField BoreFieldRequest

	// Curves, when set, are converted to the Kelvin form of the coil model.
	Curves *HeatPumpCurves

	// Multiplier corrects the total bore length per configuration; nil is none.
	Multiplier LengthMultiplier
}

// SizingResult is the sized ground heat exchanger. It holds no references to
// the Input it was built from.
type SizingResult struct {
	Name               string             `json:"name"`
	Layout             BoreFieldLayout    `json:"layout"`
	Pipe               PipeSpec           `json:"pipe"`
	Resistances        ThermalResistances `json:"resistances"`
	DesignTemperatures DesignTemperatures `json:"design_temperatures"`
	BoreLength         BoreLength         `json:"bore_length"`
	GFunction          GFunctionCurve     `json:"g_function"`
	LoopFlow           float64            `json:"loop_flow_gpm"`
	HeatingEIR         float64            `json:"heating_eir"`
	CoolingEIR         float64            `json:"cooling_eir"`
	Curves             *HeatPumpCurves    `json:"curves_si,omitempty"`
	Warnings           []Warning          `json:"warnings,omitempty"`
}

func (in Input) validate() error {
	c := in.Capacity
	if c.Heating < 0 || c.Cooling < 0 || !(math.Max(c.Heating, c.Cooling) > 0) ||
		math.IsInf(c.Heating, 0) || math.IsInf(c.Cooling, 0) {
		return fmt.Errorf("%w: capacities heating %g, cooling %g Btu/h", ErrInvalidInput, c.Heating, c.Cooling)
	}
	if err := in.Weather.validate(); err != nil {
		return err
	}
	return in.BoreField.validate()
}

func (in Input) wrap(err error) error {
	if in.Name == "" {
		return fmt.Errorf("sizing: %w", err)
	}
	return fmt.Errorf("sizing %s: %w", in.Name, err)
}

// LoopFlow is the design loop flow rate, 3 gpm per ton of the larger capacity.
func LoopFlow(c CapacityRequirement) float64 {
	tons := math.Max(1.0, math.Max(c.HeatingTons(), c.CoolingTons()))
	return math.Floor(tons) * gpmPerTon
}

/*
Sizes a vertical ground heat exchanger.

	Args:
		in: equipment, weather and bore field inputs

	Returns:
		the sized field with its g-function, or an error and no result

	Notes:
		Warnings do not stop sizing, they are collected in the result.
*/
func Size(in Input) (*SizingResult, error) {
	if err := in.validate(); err != nil {
		return nil, in.wrap(err)
	}

	heatingEIR, err := HeatingEIR(in.COP)
	if err != nil {
		return nil, in.wrap(err)
	}
	coolingEIR, err := CoolingEIR(in.EER)
	if err != nil {
		return nil, in.wrap(err)
	}

	req := in.BoreField
	pipe, err := LookupPipe(req.PipeSize)
	if err != nil {
		return nil, in.wrap(err)
	}
	resistances := CalcResistances(req, pipe)
	design := EstimateDesignTemperatures(in.Weather, in.Fluid)

	length, err := EstimateBoreLength(BoreLengthInput{
		Weather:      in.Weather,
		Design:       design,
		Resistances:  resistances,
		Capacity:     in.Capacity,
		HeatingEIR:   heatingEIR,
		CoolingEIR:   coolingEIR,
		DesignDeltaT: req.DesignDeltaT,
		Config:       req.Config,
		Multiplier:   in.Multiplier,
	})
	if err != nil {
		return nil, in.wrap(err)
	}

	layout, warnings := SizeBoreField(length.Total, req, in.Capacity)

	cfg, holes, ws, err := ValidateConfiguration(layout.Config, layout.NumBoreHoles)
	if err != nil {
		return nil, in.wrap(err)
	}
	warnings = append(warnings, ws...)
	if holes != layout.NumBoreHoles && req.Depth.IsAuto() {
		layout.BoreDepth = autoDepth(length.Total, holes) + boreDepthMargin
	}
	layout.Config = cfg
	layout.NumBoreHoles = holes
	layout.SpacingToDepthRatio = req.Spacing / layout.BoreDepth

	gfnc, err := SelectGFunction(layout.Config, layout.NumBoreHoles, layout.SpacingToDepthRatio)
	if err != nil {
		return nil, in.wrap(err)
	}

	res := &SizingResult{
		Name:               in.Name,
		Layout:             layout,
		Pipe:               pipe,
		Resistances:        resistances,
		DesignTemperatures: design,
		BoreLength:         length,
		GFunction:          gfnc,
		LoopFlow:           LoopFlow(in.Capacity),
		HeatingEIR:         heatingEIR,
		CoolingEIR:         coolingEIR,
		Warnings:           warnings,
	}
	if in.Curves != nil {
		si := in.Curves.ToSI(Kelvin)
		res.Curves = &si
	}
	return res, nil
}
