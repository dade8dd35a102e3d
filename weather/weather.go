package weather

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"ghx_sizing/ghx"
)

var (
	// ErrRowCount is returned when a file does not hold exactly one year of steps.
	ErrRowCount = errors.New("weather: row count does not match one year")
	// ErrMonth is returned for rows outside months 1 to 12, or a month with no rows.
	ErrMonth = errors.New("weather: bad month")
)

// Design-day percentiles of the dry-bulb distribution.
const (
	heatingPercentile = 0.004 // 99.6% heating design
	coolingPercentile = 0.996 // 0.4% cooling design
)

// Record is one step of a weather file.
type Record struct {
	Month       int     `csv:"month"`
	Day         int     `csv:"day"`
	Hour        int     `csv:"hour"`
	Temperature float64 `csv:"temperature"` // dry-bulb, degree C
}

/*
Reads a weather file.

	Args:
		r: CSV with month, day, hour and temperature columns
		itv: time step of the file

	Returns:
		one year of records
*/
func Read(r io.Reader, itv Interval) ([]Record, error) {
	if itv.StepsPerHour() == 0 {
		return nil, fmt.Errorf("weather: unknown interval %q", itv)
	}

	var rows []*Record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("weather: decoding: %w", err)
	}
	if len(rows) != itv.AnnualSteps() {
		return nil, fmt.Errorf("%w: %d rows, %s interval needs %d", ErrRowCount, len(rows), itv, itv.AnnualSteps())
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			return nil, fmt.Errorf("%w: row %d has month %d", ErrMonth, i+1, row.Month)
		}
		records[i] = *row
	}
	return records, nil
}

// ReadFile reads a weather file from disk.
func ReadFile(path string, itv Interval) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	defer f.Close()

	records, err := Read(f, itv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func celsiusToFahrenheit(c float64) float64 {
	return c*1.8 + 32.0
}

/*
Design statistics of a year of dry-bulb temperatures.

	Args:
		records: one year of weather records

	Returns:
		heating and cooling design dry-bulbs, monthly and annual averages, F

	Notes:
		The heating design is the 0.4 percentile and the cooling design the 99.6
		percentile of the empirical distribution.
*/
func Statistics(records []Record) (ghx.WeatherStatistics, error) {
	if len(records) == 0 {
		return ghx.WeatherStatistics{}, fmt.Errorf("%w: no records", ErrRowCount)
	}

	all := make([]float64, len(records))
	var monthly [12][]float64
	for i, r := range records {
		if r.Month < 1 || r.Month > 12 {
			return ghx.WeatherStatistics{}, fmt.Errorf("%w: record %d has month %d", ErrMonth, i, r.Month)
		}
		all[i] = r.Temperature
		monthly[r.Month-1] = append(monthly[r.Month-1], r.Temperature)
	}

	var ws ghx.WeatherStatistics
	for m, ts := range monthly {
		if len(ts) == 0 {
			return ghx.WeatherStatistics{}, fmt.Errorf("%w: month %d has no records", ErrMonth, m+1)
		}
		ws.MonthlyAvgDB[m] = celsiusToFahrenheit(stat.Mean(ts, nil))
	}
	ws.AnnualAvgDB = celsiusToFahrenheit(stat.Mean(all, nil))

	sort.Float64s(all)
	ws.HeatingDesignDB = celsiusToFahrenheit(stat.Quantile(heatingPercentile, stat.Empirical, all, nil))
	ws.CoolingDesignDB = celsiusToFahrenheit(stat.Quantile(coolingPercentile, stat.Empirical, all, nil))
	return ws, nil
}

// Format is the layout of a weather file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatHASP Format = "hasp"
)

// ParseFormat parses "csv" or "hasp". An empty string is csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatHASP:
		return FormatHASP, nil
	default:
		return "", fmt.Errorf("weather: unknown format %q", s)
	}
}

// LoadStatistics reads a weather file and returns its design statistics.
// HASP files are always hourly and ignore itv.
func LoadStatistics(path string, format Format, itv Interval) (ghx.WeatherStatistics, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case FormatHASP:
		records, err = ReadHASPFile(path)
	case FormatCSV, "":
		records, err = ReadFile(path, itv)
	default:
		err = fmt.Errorf("weather: unknown format %q", format)
	}
	if err != nil {
		return ghx.WeatherStatistics{}, err
	}
	return Statistics(records)
}
