package ghx

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gocarina/gocsv"
)

// GFunctionPoints is the number of points of every g-function curve.
const GFunctionPoints = 27

// dimensionless time ln(t/ts) shared by every curve
var lnTOverTs = [GFunctionPoints]float64{
	-8.5, -7.8, -7.2, -6.5, -5.9, -5.2, -4.5, -3.963, -3.27, -2.864, -2.577, -2.171, -1.884,
	-1.191, -0.497, -0.274, -0.051, 0.196, 0.419, 0.642, 0.873, 1.112, 1.335, 1.679, 2.028,
	2.275, 3.003,
}

// upper bounds of the spacing-to-depth ratio buckets
var ratioBuckets = [...]float64{0.02, 0.03, 0.05, 0.1, 0.15}

// LnTOverTs returns the abscissas of the g-function curves.
func LnTOverTs() [GFunctionPoints]float64 {
	return lnTOverTs
}

// RatioBuckets returns the upper bounds of the spacing-to-depth ratio buckets.
func RatioBuckets() []float64 {
	return append([]float64(nil), ratioBuckets[:]...)
}

// GFunctionPoint is one point of a g-function curve.
type GFunctionPoint struct {
	LnTOverTs float64 `json:"ln_t_over_ts" csv:"ln_t_over_ts"`
	G         float64 `json:"g" csv:"g"`
}

// GFunctionCurve is the long-term step response of a bore field.
type GFunctionCurve [GFunctionPoints]GFunctionPoint

// Pairs returns the curve as ordered (ln(t/ts), g) pairs.
func (c GFunctionCurve) Pairs() [][2]float64 {
	pairs := make([][2]float64, len(c))
	for i, p := range c {
		pairs[i] = [2]float64{p.LnTOverTs, p.G}
	}
	return pairs
}

// Values returns the g values in abscissa order.
func (c GFunctionCurve) Values() []float64 {
	gs := make([]float64, len(c))
	for i, p := range c {
		gs[i] = p.G
	}
	return gs
}

// Generated by finite line source superposition. A single borehole has no
// spacing dependence, so its five buckets share one curve. Regenerate the
// file if published coefficients become available.
//
//go:embed gfunction_table.csv
var gFunctionCSV []byte

type gFunctionRow struct {
	Config    string  `csv:"configuration"`
	Holes     int     `csv:"holes"`
	Ratio     float64 `csv:"spacing_to_depth"`
	LnTOverTs float64 `csv:"ln_t_over_ts"`
	G         float64 `csv:"g"`
}

type gFunctionKey struct {
	config BoreConfig
	holes  int
	bucket int
}

var (
	gFunctionOnce  sync.Once
	gFunctionTable map[gFunctionKey]GFunctionCurve
	gFunctionErr   error
)

func loadGFunctionTable() (map[gFunctionKey]GFunctionCurve, error) {
	gFunctionOnce.Do(func() {
		gFunctionTable, gFunctionErr = parseGFunctionTable(gFunctionCSV)
	})
	return gFunctionTable, gFunctionErr
}

func bucketIndex(ratio float64) int {
	for i, b := range ratioBuckets {
		if ratio == b {
			return i
		}
	}
	return -1
}

func parseGFunctionTable(data []byte) (map[gFunctionKey]GFunctionCurve, error) {
	var rows []*gFunctionRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("ghx: reading g-function table: %w", err)
	}

	table := make(map[gFunctionKey]GFunctionCurve)
	filled := make(map[gFunctionKey]int)
	for _, r := range rows {
		b := bucketIndex(r.Ratio)
		if b < 0 {
			return nil, fmt.Errorf("ghx: g-function table: unknown ratio bucket %g", r.Ratio)
		}
		k := gFunctionKey{config: BoreConfig(r.Config), holes: r.Holes, bucket: b}
		n := filled[k]
		if n >= GFunctionPoints || r.LnTOverTs != lnTOverTs[n] {
			return nil, fmt.Errorf("ghx: g-function table: %s/%d/%g point %d has ln(t/ts) %g",
				r.Config, r.Holes, r.Ratio, n, r.LnTOverTs)
		}
		c := table[k]
		c[n] = GFunctionPoint{LnTOverTs: r.LnTOverTs, G: r.G}
		table[k] = c
		filled[k] = n + 1
	}
	for k, n := range filled {
		if n != GFunctionPoints {
			return nil, fmt.Errorf("ghx: g-function table: %s/%d has %d points", k.config, k.holes, n)
		}
	}
	return table, nil
}

/*
Selects the g-function curve of a bore field.

	Args:
		cfg: bore configuration (not auto)
		holes: number of bore holes
		ratio: bore spacing over bore depth, -

	Returns:
		27-point curve of the first ratio bucket whose bound is not below ratio

	Notes:
		Buckets are <= 0.02, 0.03, 0.05, 0.1 and 0.15. Denser fields have no data.
*/
func SelectGFunction(cfg BoreConfig, holes int, ratio float64) (GFunctionCurve, error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > ratioBuckets[len(ratioBuckets)-1] {
		return GFunctionCurve{}, fmt.Errorf("%w: %g (table covers up to %g)",
			ErrRatioOutOfRange, ratio, ratioBuckets[len(ratioBuckets)-1])
	}

	table, err := loadGFunctionTable()
	if err != nil {
		return GFunctionCurve{}, err
	}

	bucket := 0
	for bucket < len(ratioBuckets) && ratio > ratioBuckets[bucket] {
		bucket++
	}

	c, ok := table[gFunctionKey{config: cfg, holes: holes, bucket: bucket}]
	if !ok {
		return GFunctionCurve{}, fmt.Errorf("%w: no g-function for %s with %d bore holes",
			ErrNoValidBoreFieldConfiguration, cfg, holes)
	}
	return c, nil
}

// WriteCSV writes the curve as ln_t_over_ts,g rows in abscissa order.
func (c GFunctionCurve) WriteCSV(w io.Writer) error {
	points := append([]GFunctionPoint(nil), c[:]...)
	return gocsv.Marshal(points, w)
}
