// Command params-check validates a fire parameter file and prints the
// loaded parameter set as a table. With no arguments it prints the built-in
// defaults.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
	"github.com/ecoclim/spitfire/pkg/params"
)

func main() {
	paramsFile := flag.String("params", "", "Path to fire parameter YAML file (built-in defaults when empty)")
	flag.Parse()

	var p *params.FireParams
	if *paramsFile == "" {
		p = params.Defaults()
		fmt.Println("Using built-in default parameters")
	} else {
		var err error
		p, err = params.FromYAML(*paramsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parameter file invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Parameter file %s OK\n", *paramsFile)
	}

	fmt.Println()
	fmt.Print(p.Describe())

	warnings := 0
	warn := func(format string, args ...interface{}) {
		fmt.Printf("warning: "+format+"\n", args...)
		warnings++
	}

	for c := fuelclass.Class(0); c < fuelclass.NumClasses; c++ {
		if p.SAV[c] <= 0.0 {
			warn("sav for %s is not positive; spread equations will treat the class as degenerate", c)
		}
		if p.BulkDensity[c] <= 0.0 {
			warn("bulk_density for %s is not positive", c)
		}
	}
	if p.ParticleDensity <= 0.0 {
		warn("particle_density is not positive; packing ratio is undefined")
	}
	if p.FuelEnergy <= 0.0 {
		warn("fuel_energy is not positive; fires will release no energy")
	}
	if p.DryingRatio <= 0.0 {
		warn("drying_ratio is not positive; fuel moisture is undefined")
	}
	if p.MinerTotal < 0.0 || p.MinerTotal >= 1.0 {
		warn("miner_total %g outside [0,1)", p.MinerTotal)
	}
	if p.DurationSlope >= 0.0 {
		warn("duration_slope is not negative; fire duration will shrink with danger")
	}

	if warnings > 0 {
		fmt.Printf("\n%d warning(s)\n", warnings)
		os.Exit(1)
	}
}
