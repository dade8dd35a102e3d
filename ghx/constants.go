package ghx

// Unit conversions used inside the engine. The engine works in IP units throughout.
const (
	btuhPerTon  = 12000.0        // Btu/h per ton of refrigeration
	btuPerWh    = 3.412141633    // Btu per Wh
	m3sPerCFM   = 0.000471947443 // m3/s per cfm
	m3sPerGPM   = 6.30901964e-05 // m3/s per gal/min
	metersPerFt = 0.3048
	gpmPerTon   = 3.0 // loop flow, gal/min per ton
)

// Bore field limits.
const (
	// maximum bore depth the g-function curves are validated for, ft
	maxBoreDepth = 345.0

	// minimum depth factor applied to the bore spacing
	minDepthPerSpacing = 0.15

	// design margin added to auto-sized depths, ft
	boreDepthMargin = 5.0

	// correction passes of the auto-sizing search
	sizingPasses = 5
)

// Design temperature bounds, F.
const (
	chwDesignMin      = 85.0
	hwDesignMinWater  = 45.0
	hwDesignMinGlycol = 35.0
	chwDesignOffset   = 15.0 // below the cooling design dry-bulb
	hwDesignOffset    = 35.0 // above the heating design dry-bulb
	annualAvgOffset   = 10.0
)

// Runtime fraction model, F.
const (
	rtfMin          = 0.25
	heatingBalance  = 71.0
	coolingBalance  = 76.0
	heatingIndoorDB = 70.0
	coolingIndoorDB = 75.0
)
