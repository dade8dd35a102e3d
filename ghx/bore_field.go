package ghx

import "math"

// BoreFieldLayout is the sized bore field.
type BoreFieldLayout struct {
	NumBoreHoles        int        `json:"num_bore_holes"`
	BoreDepth           float64    `json:"bore_depth_ft"`
	Config              BoreConfig `json:"bore_config"`
	SpacingToDepthRatio float64    `json:"spacing_to_depth_ratio"`
}

// TotalLength is the drilled length of the field, ft.
func (l BoreFieldLayout) TotalLength() float64 {
	return l.BoreDepth * float64(l.NumBoreHoles)
}

func autoDepth(totalLength float64, holes int) float64 {
	return math.Floor(totalLength / float64(holes))
}

/*
Turns the required bore length into a hole count and a depth.

	Args:
		totalLength: required total bore length, ft
		req: bore field request, each of holes and depth is auto or fixed
		capacity: equipment capacity, the auto search starts from one hole per cooling ton

	Returns:
		(1) layout with the requested configuration, not yet validated
		(2) warnings

	Notes:
		Only the fully user-fixed case warns: it bypasses the correction passes.
*/
func SizeBoreField(totalLength float64, req BoreFieldRequest, capacity CapacityRequirement) (BoreFieldLayout, []Warning) {
	var (
		holes    int
		depth    float64
		warnings []Warning
	)

	switch {
	case req.Holes.IsAuto() && req.Depth.IsAuto():
		holes = int(math.Max(1, math.Floor(capacity.CoolingTons()+0.5)))
		depth = autoDepth(totalLength, holes)
		minDepth := minDepthPerSpacing * req.Spacing
		for pass := 0; pass < sizingPasses; pass++ {
			if depth < minDepth && holes > 1 {
				holes--
				depth = autoDepth(totalLength, holes)
			} else if depth > maxBoreDepth {
				holes++
				depth = autoDepth(totalLength, holes)
			}
		}
		depth += boreDepthMargin

	case req.Holes.IsAuto():
		depth = req.Depth.Feet()
		holes = int(math.Max(1, math.Round(totalLength/depth)))

	case req.Depth.IsAuto():
		holes = req.Holes.Count()
		depth = autoDepth(totalLength, holes) + boreDepthMargin

	default:
		holes = req.Holes.Count()
		depth = req.Depth.Feet()
		warnings = append(warnings, newWarning(WarningUserOverrideRisk,
			"bore holes (%d) and depth (%g ft) are both user-specified; an unbalanced field "+
				"may not hold long-term ground temperatures (%g ft required, %g ft given)",
			holes, depth, totalLength, float64(holes)*depth))
	}

	return BoreFieldLayout{
		NumBoreHoles:        holes,
		BoreDepth:           depth,
		Config:              req.Config,
		SpacingToDepthRatio: req.Spacing / depth,
	}, warnings
}
