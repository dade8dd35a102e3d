package ghx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistances(t *testing.T) {
	pipeR := PipeResistance(1.050, 0.859, 0.23)
	assert.InDelta(t, 0.13893293826335887, pipeR, 1e-12)

	boreR := BoreholeResistance(5.0, 1.050, 0.4, pipeR, ShankSpacingB)
	assert.InDelta(t, 0.43803578809252086, boreR, 1e-12)

	groundR := GroundResistance(20.0, 5.0, 0.6)
	assert.InDelta(t, 1.0268679609805553, groundR, 1e-12)
	assert.InDelta(t, math.Log(48)/(2*math.Pi*0.6), groundR, 1e-15)
}

func TestCalcResistancesDefaults(t *testing.T) {
	req := DefaultBoreFieldRequest()
	pipe, err := LookupPipe(req.PipeSize)
	assert.NoError(t, err)

	r := CalcResistances(req, pipe)
	assert.InDelta(t, 0.13893293826335887, r.Pipe, 1e-12)
	assert.InDelta(t, 0.43803578809252086, r.Borehole, 1e-12)
	assert.InDelta(t, 1.0268679609805553, r.Ground, 1e-12)

	// repeated evaluation is bit-identical
	assert.Equal(t, r, CalcResistances(req, pipe))
}

func TestResistancesFollowGeometry(t *testing.T) {
	pipeR := PipeResistance(1.050, 0.859, 0.23)

	t.Run("grout", func(t *testing.T) {
		lo := BoreholeResistance(5.0, 1.050, 0.4, pipeR, ShankSpacingB)
		hi := BoreholeResistance(5.0, 1.050, 0.8, pipeR, ShankSpacingB)
		assert.Less(t, hi, lo)
	})
	t.Run("spacing", func(t *testing.T) {
		assert.Less(t, GroundResistance(15, 5, 0.6), GroundResistance(25, 5, 0.6))
	})
	t.Run("shank", func(t *testing.T) {
		a := BoreholeResistance(5.0, 1.050, 0.4, pipeR, ShankSpacingA)
		b := BoreholeResistance(5.0, 1.050, 0.4, pipeR, ShankSpacingB)
		c := BoreholeResistance(5.0, 1.050, 0.4, pipeR, ShankSpacingC)
		assert.Greater(t, a, b)
		assert.Greater(t, b, c)
		assert.Equal(t, b, BoreholeResistance(5.0, 1.050, 0.4, pipeR, ""))
	})
}

func TestParseShankSpacing(t *testing.T) {
	s, err := ParseShankSpacing("a")
	require.NoError(t, err)
	assert.Equal(t, ShankSpacingA, s)

	s, err = ParseShankSpacing("")
	require.NoError(t, err)
	assert.Equal(t, ShankSpacingB, s)

	_, err = ParseShankSpacing("D")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
