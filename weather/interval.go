package weather

import "fmt"

// Interval is the time step of a weather file.
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

// ParseInterval parses "1h", "30m" or "15m". An empty string is hourly.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case "", IntervalH1:
		return IntervalH1, nil
	case IntervalM30, IntervalM15:
		return Interval(s), nil
	default:
		return "", fmt.Errorf("weather: unknown interval %q", s)
	}
}

/*
Number of steps an hour is split into.

	Returns:
		1 for 1h, 2 for 30m, 4 for 15m, 0 for an unknown interval
*/
func (i Interval) StepsPerHour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		return 0
	}
}

// AnnualSteps is the number of rows of a one-year file at this interval.
func (i Interval) AnnualSteps() int {
	return 8760 * i.StepsPerHour()
}
