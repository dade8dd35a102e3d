package weather

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// HASP files hold seven element lines per day, each with 24 three-digit hourly values.
const (
	haspLinesPerDay = 7
	haspDays        = 365
	haspFieldWidth  = 3
)

/*
Reads the dry-bulb temperatures of a HASP weather file.

	Args:
		r: HASP text, 3-column SI layout

	Returns:
		one year of hourly records

	Notes:
		Only the first element line of each day, temperature coded as 10 T + 500,
		is read. Trailing lines after the 365th day are ignored.
*/
func ReadHASP(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, haspDays*haspLinesPerDay)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("weather: reading HASP: %w", err)
	}
	if len(lines) < haspDays*haspLinesPerDay {
		return nil, fmt.Errorf("%w: %d HASP lines, need %d", ErrRowCount, len(lines), haspDays*haspLinesPerDay)
	}

	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	records := make([]Record, 0, 8760)
	for d := 0; d < haspDays; d++ {
		values, err := haspHourly(lines[d*haspLinesPerDay])
		if err != nil {
			return nil, fmt.Errorf("weather: HASP day %d: %w", d+1, err)
		}
		date := start.AddDate(0, 0, d)
		for h, v := range values {
			records = append(records, Record{
				Month:       int(date.Month()),
				Day:         date.Day(),
				Hour:        h + 1,
				Temperature: math.Round((v-500.0)*0.1*10) / 10,
			})
		}
	}
	return records, nil
}

func haspHourly(line string) ([24]float64, error) {
	var values [24]float64
	if len(line) < 24*haspFieldWidth {
		return values, fmt.Errorf("line has %d characters, need %d", len(line), 24*haspFieldWidth)
	}
	for h := range values {
		field := line[h*haspFieldWidth : (h+1)*haspFieldWidth]
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return values, fmt.Errorf("hour %d: %w", h+1, err)
		}
		values[h] = float64(n)
	}
	return values, nil
}

// ReadHASPFile reads a HASP weather file from disk.
func ReadHASPFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	defer f.Close()

	records, err := ReadHASP(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
