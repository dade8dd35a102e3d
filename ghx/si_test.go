package ghx

import (
	"testing"

	"github.com/ctessum/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIReport(t *testing.T) {
	res, err := Size(defaultInput(36000, 36000))
	require.NoError(t, err)
	si := res.SI()

	require.NoError(t, si.BoreDepth.Check(unit.Meter))
	require.NoError(t, si.TotalLength.Check(unit.Meter))
	require.NoError(t, si.LoopFlow.Check(unit.Meter3PerSecond))
	require.NoError(t, si.CHWDesign.Check(unit.Kelvin))
	require.NoError(t, si.HWDesign.Check(unit.Kelvin))
	require.NoError(t, si.GroundR.Check(meterKelvinPerWatt))

	assert.InDelta(t, 335*0.3048, si.BoreDepth.Value(), 1e-9)
	assert.InDelta(t, 6*335*0.3048, si.TotalLength.Value(), 1e-9)
	assert.InDelta(t, 9*6.30901964e-05, si.LoopFlow.Value(), 1e-12)
	assert.InDelta(t, 302.594444, si.CHWDesign.Value(), 1e-5)
	assert.InDelta(t, 280.372222, si.HWDesign.Value(), 1e-5)
	assert.InDelta(t, 0.13893293826335887*0.577789317, si.PipeR.Value(), 1e-9)

	assert.Error(t, si.BoreholeR.Check(unit.Meter))
}
