// Command firedanger runs a fire weather index over a daily weather series
// and prints the day-by-day index, dewpoint, and fire danger, with summary
// statistics at the end. It is a quick way to inspect a weather file before
// committing to a full simulation.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ecoclim/spitfire/internal/weather"
	"github.com/ecoclim/spitfire/pkg/fireweather"
)

func main() {
	weatherFile := flag.String("weather", "", "Path to daily weather CSV (temp_degC, precip, RH, wind)")
	kind := flag.String("index", "nesterov", "Fire weather index formulation")
	alpha := flag.Float64("alpha", 0.00037, "Fire danger scaling parameter")
	flag.Parse()

	if *weatherFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	days, err := weather.ReadCSV(*weatherFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading weather: %v\n", err)
		os.Exit(1)
	}

	wx, err := fireweather.New(fireweather.IndexKind(*kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fire danger for %s (%s index)\n\n", *weatherFile, wx.Kind())
	fmt.Printf("%-5s %-10s %-8s %-6s %-10s %-12s %-8s\n",
		"day", "temp_degC", "precip", "RH", "dewpoint", "index", "danger")

	index := make([]float64, len(days))
	danger := make([]float64, len(days))
	for i, d := range days {
		wx.UpdateIndex(d.TempC, d.Precip, d.RH)
		wx.UpdateFireDangerIndex(*alpha)
		index[i] = wx.FireWeatherIndex()
		danger[i] = wx.FireDangerIndex()

		fmt.Printf("%-5d %-10.1f %-8.1f %-6.1f %-10.2f %-12.1f %-8.3f\n",
			i, d.TempC, d.Precip, d.RH,
			fireweather.Dewpoint(d.TempC, d.RH), index[i], danger[i])
	}

	resets := 0
	for i := 1; i < len(index); i++ {
		if index[i] < index[i-1] {
			resets++
		}
	}
	highDanger := 0
	for _, d := range danger {
		if d >= 0.5 {
			highDanger++
		}
	}

	fmt.Printf("\nSummary over %d days:\n", len(days))
	fmt.Printf("  Mean index:    %.1f ± %.1f\n", stat.Mean(index, nil), stat.StdDev(index, nil))
	fmt.Printf("  Peak index:    %.1f\n", floats.Max(index))
	fmt.Printf("  Mean danger:   %.3f\n", stat.Mean(danger, nil))
	fmt.Printf("  Peak danger:   %.3f\n", floats.Max(danger))
	fmt.Printf("  Days ≥ 0.5:    %d\n", highDanger)
	fmt.Printf("  Rain resets:   %d\n", resets)
}
