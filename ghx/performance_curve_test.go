package ghx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCurves() HeatPumpCurves {
	return HeatPumpCurves{
		CoolingCapacity: Biquadratic{0.87, 0.0058, 1.8e-5, -0.0034, 1.1e-6, -2.7e-5},
		CoolingPower:    Biquadratic{0.55, -0.0031, 3.9e-5, 0.0062, 1.5e-5, -4.1e-5},
		HeatingCapacity: Biquadratic{0.71, -0.0027, 2.2e-5, 0.0091, -1.6e-5, 1.2e-5},
		HeatingPower:    Biquadratic{0.68, 0.0061, -1.1e-5, -0.0042, 2.4e-5, -1.9e-5},
	}
}

func TestBiquadraticToSIPreservesValues(t *testing.T) {
	f := func(k float64) float64 { return 1.8*k - 459.67 }
	for _, b := range []Biquadratic{sampleCurves().CoolingCapacity, sampleCurves().HeatingPower} {
		si := b.ToSI(Kelvin)
		c := b.ToSI(Celsius)
		for _, tk := range [][2]float64{{299.8, 302.6}, {294.3, 280.4}, {273.15, 310.9}} {
			want := b.Eval(f(tk[0]), f(tk[1]))
			assert.InDelta(t, want, si.Eval(tk[0], tk[1]), 1e-9)
			assert.InDelta(t, want, c.Eval(tk[0]-273.15, tk[1]-273.15), 1e-9)
		}
	}
}

func TestBiquadraticRoundTrip(t *testing.T) {
	for _, b := range []Biquadratic{
		sampleCurves().CoolingPower,
		sampleCurves().HeatingCapacity,
		{1, 0, 0, 0, 0, 0},
	} {
		for _, scale := range []TemperatureScale{Kelvin, Celsius} {
			back, err := b.ToSI(scale).ToIP(scale)
			require.NoError(t, err)
			for i := range b {
				assert.InDelta(t, b[i], back[i], 1e-8, "%s coefficient %d", scale, i)
			}
		}
	}
}

func TestHeatPumpCurvesToSI(t *testing.T) {
	h := sampleCurves()
	si := h.ToSI(Kelvin)
	assert.Equal(t, h.CoolingCapacity.ToSI(Kelvin), si.CoolingCapacity)
	assert.Equal(t, h.HeatingPower.ToSI(Kelvin), si.HeatingPower)
	// the curve fit itself is left untouched
	assert.Equal(t, sampleCurves(), h)
}

func TestEIR(t *testing.T) {
	fan, pump := isoAdjustments()
	assert.InDelta(t, 0.004570024406383333, fan, 1e-12)
	assert.InDelta(t, 9.4319843618e-05, pump, 1e-12)

	eir, err := CoolingEIR(16)
	require.NoError(t, err)
	assert.InDelta(t, 0.19431340900605792, eir, 1e-9)

	eir, err = HeatingEIR(3.6)
	require.NoError(t, err)
	assert.InDelta(t, 0.27436729877951227, eir, 1e-9)

	better, err := CoolingEIR(20)
	require.NoError(t, err)
	assert.Less(t, better, 0.19431340900605792)
}

func TestEIRInvalid(t *testing.T) {
	for _, eer := range []float64{0, -3, math.NaN(), 500} {
		_, err := CoolingEIR(eer)
		assert.ErrorIs(t, err, ErrInvalidInput, "EER %g", eer)
	}
	for _, cop := range []float64{0, -1, math.NaN(), 0.5} {
		_, err := HeatingEIR(cop)
		assert.ErrorIs(t, err, ErrInvalidInput, "COP %g", cop)
	}
}
