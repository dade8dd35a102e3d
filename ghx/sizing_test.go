package ghx

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultInput(heating, cooling float64) Input {
	return Input{
		Name:      "test",
		Weather:   temperateWeather(),
		Capacity:  CapacityRequirement{Heating: heating, Cooling: cooling},
		EER:       16,
		COP:       3.6,
		Fluid:     Water(),
		BoreField: DefaultBoreFieldRequest(),
	}
}

// 3-ton temperate case. With the default ground (0.6) and grout (0.4)
// the same loads need 6 holes at 335 ft, so the field sits on
// conductive rock with enhanced grout.
func TestSize(t *testing.T) {
	in := defaultInput(24000, 36000)
	in.BoreField.GroundConductivity = 1.2
	in.BoreField.GroutConductivity = 0.75

	res, err := Size(in)
	require.NoError(t, err)
	assert.InDelta(t, 716.209, res.BoreLength.Total, 1e-3)
	assert.Equal(t, 3, res.Layout.NumBoreHoles)
	assert.Equal(t, 243.0, res.Layout.BoreDepth)
	assert.Equal(t, ConfigLine, res.Layout.Config)
	assert.InDelta(t, 20.0/243.0, res.Layout.SpacingToDepthRatio, 1e-12)
	assert.Empty(t, res.Warnings)

	want, err := SelectGFunction(ConfigLine, 3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, want, res.GFunction)

	assert.Equal(t, 9.0, res.LoopFlow)
	assert.Equal(t, DesignTemperatures{CHWDesign: 85, HWDesign: 45}, res.DesignTemperatures)
	assert.Equal(t, "test", res.Name)
	assert.Nil(t, res.Curves)
}

func TestSizeThreeTonDefaultGround(t *testing.T) {
	res, err := Size(defaultInput(24000, 36000))
	require.NoError(t, err)
	assert.Equal(t, ConfigLine, res.Layout.Config)
	assert.Equal(t, 6, res.Layout.NumBoreHoles)
	assert.Equal(t, 335.0, res.Layout.BoreDepth)
}

func TestSizeDefaultGeometry(t *testing.T) {
	res, err := Size(defaultInput(36000, 36000))
	require.NoError(t, err)
	assert.InDelta(t, 1984.8589357574458, res.BoreLength.Total, 1e-6)
	assert.Equal(t, 6, res.Layout.NumBoreHoles)
	assert.Equal(t, 335.0, res.Layout.BoreDepth)
	assert.Equal(t, ConfigLine, res.Layout.Config)
	assert.InDelta(t, 0.13893293826335887, res.Resistances.Pipe, 1e-9)
	assert.InDelta(t, 0.27436729877951227, res.HeatingEIR, 1e-9)
	assert.InDelta(t, 0.19431340900605792, res.CoolingEIR, 1e-9)
}

func TestSizeCappedLineRecomputesDepth(t *testing.T) {
	in := defaultInput(36000, 36000)
	in.BoreField.Config = ConfigLine
	in.BoreField.Holes = FixedHoles(12)

	res, err := Size(in)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Layout.NumBoreHoles)
	assert.Equal(t, 203.0, res.Layout.BoreDepth)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarningConfigurationCapped, res.Warnings[0].Code)
}

func TestSizeSubstitutedConfiguration(t *testing.T) {
	in := defaultInput(24000, 36000)
	in.BoreField.GroundConductivity = 1.2
	in.BoreField.GroutConductivity = 0.75
	in.BoreField.Config = ConfigRectangle

	res, err := Size(in)
	require.NoError(t, err)
	assert.Equal(t, ConfigLine, res.Layout.Config)
	assert.Equal(t, 3, res.Layout.NumBoreHoles)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarningConfigurationSubstituted, res.Warnings[0].Code)
}

func TestSizeUserFixedField(t *testing.T) {
	in := defaultInput(36000, 36000)
	in.BoreField.Holes = FixedHoles(8)
	in.BoreField.Depth = FixedDepth(250)
	in.BoreField.Config = ConfigRectangle

	res, err := Size(in)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Layout.NumBoreHoles)
	assert.Equal(t, 250.0, res.Layout.BoreDepth)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarningUserOverrideRisk, res.Warnings[0].Code)
}

func TestSizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
		err    error
	}{
		{"unsupported pipe", func(in *Input) { in.BoreField.PipeSize = 2.5 }, ErrUnsupportedPipeSize},
		{"degenerate heating", func(in *Input) { in.Weather.HeatingDesignDB = 70 }, ErrDegenerateSizingInput},
		{"ratio out of range", func(in *Input) {
			in.BoreField.Holes = FixedHoles(4)
			in.BoreField.Depth = FixedDepth(50)
		}, ErrRatioOutOfRange},
		{"no capacity", func(in *Input) { in.Capacity = CapacityRequirement{} }, ErrInvalidInput},
		{"negative capacity", func(in *Input) { in.Capacity.Heating = -1 }, ErrInvalidInput},
		{"bad weather", func(in *Input) { in.Weather.AnnualAvgDB = math.NaN() }, ErrInvalidInput},
		{"bad spacing", func(in *Input) { in.BoreField.Spacing = 0 }, ErrInvalidInput},
		{"bad COP", func(in *Input) { in.COP = 0 }, ErrInvalidInput},
		{"field too large", func(in *Input) {
			in.BoreField.Config = ConfigRectangle
			in.BoreField.Holes = FixedHoles(12)
		}, ErrNoValidBoreFieldConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := defaultInput(36000, 36000)
			tt.modify(&in)
			res, err := Size(in)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, res)
			assert.Contains(t, err.Error(), "sizing test:")
		})
	}
}

func TestSizeCurves(t *testing.T) {
	in := defaultInput(36000, 36000)
	curves := sampleCurves()
	in.Curves = &curves

	res, err := Size(in)
	require.NoError(t, err)
	require.NotNil(t, res.Curves)
	assert.Equal(t, curves.ToSI(Kelvin), *res.Curves)

	// the result does not alias the input
	curves.CoolingPower[0] = 99
	assert.NotEqual(t, 99.0, res.Curves.CoolingPower[0])
}

func TestSizeDeterministic(t *testing.T) {
	a, err := Size(defaultInput(30000, 42000))
	require.NoError(t, err)
	b, err := Size(defaultInput(30000, 42000))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(ja), `"bore_config":"u-config"`)
}

func TestLoopFlow(t *testing.T) {
	assert.Equal(t, 3.0, LoopFlow(CapacityRequirement{Heating: 6000}))
	assert.Equal(t, 9.0, LoopFlow(CapacityRequirement{Heating: 24000, Cooling: 47000}))
	assert.Equal(t, 12.0, LoopFlow(CapacityRequirement{Cooling: 48000}))
}
