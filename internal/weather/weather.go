// Package weather loads the daily forcing series that drives a fire
// simulation: one row per day of temperature, precipitation, humidity, and
// wind.
package weather

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Day is one day of weather forcing.
type Day struct {
	TempC  float64 // daily mean air temperature [°C]
	Precip float64 // precipitation [mm]
	RH     float64 // relative humidity [%]
	Wind   float64 // wind speed [m/min]
}

// Column names expected in the CSV header. Extra columns (a leading row
// index, for instance) are ignored.
const (
	colTemp   = "temp_degC"
	colPrecip = "precip"
	colRH     = "RH"
	colWind   = "wind"
)

// ReadCSV loads a daily weather series. The file needs a header row naming
// at least the four forcing columns; rows are returned in file order.
func ReadCSV(path string) ([]Day, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening weather file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading weather file %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("weather file %s has no data rows", path)
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[h] = i
	}
	for _, name := range []string{colTemp, colPrecip, colRH, colWind} {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("weather file %s missing column %q", path, name)
		}
	}

	days := make([]Day, 0, len(rows)-1)
	for i, row := range rows[1:] {
		day, err := parseRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("weather file %s row %d: %w", path, i+2, err)
		}
		days = append(days, day)
	}
	return days, nil
}

func parseRow(row []string, colIdx map[string]int) (Day, error) {
	var day Day
	for _, col := range []struct {
		name string
		dst  *float64
	}{
		{colTemp, &day.TempC},
		{colPrecip, &day.Precip},
		{colRH, &day.RH},
		{colWind, &day.Wind},
	} {
		idx := colIdx[col.name]
		if idx >= len(row) {
			return Day{}, fmt.Errorf("missing value for column %q", col.name)
		}
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return Day{}, fmt.Errorf("column %q: %w", col.name, err)
		}
		*col.dst = v
	}
	return day, nil
}
