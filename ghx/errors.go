package ghx

import "errors"

var (
	// ErrUnsupportedPipeSize is returned for a nominal pipe size outside the catalog.
	ErrUnsupportedPipeSize = errors.New("ghx: unsupported pipe size")

	// ErrDegenerateSizingInput is returned when the climate and capacity inputs
	// produce a non-positive denominator in the bore length formulas.
	ErrDegenerateSizingInput = errors.New("ghx: degenerate sizing input")

	// ErrNoValidBoreFieldConfiguration is returned when no bore configuration
	// accepts the computed hole count.
	ErrNoValidBoreFieldConfiguration = errors.New("ghx: no valid bore field configuration")

	// ErrRatioOutOfRange is returned when the spacing-to-depth ratio is outside
	// the g-function table.
	ErrRatioOutOfRange = errors.New("ghx: spacing-to-depth ratio out of range")

	// ErrInvalidInput is returned for non-positive geometry, conductivities,
	// capacities or efficiencies.
	ErrInvalidInput = errors.New("ghx: invalid input")
)
