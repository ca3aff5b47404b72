// Command config-check validates a simulation config file and every input
// it references: the fire weather index kind, the parameter file, the
// weather file, and each site's fuel model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecoclim/spitfire/internal/config"
	"github.com/ecoclim/spitfire/internal/weather"
	"github.com/ecoclim/spitfire/pkg/fireweather"
	"github.com/ecoclim/spitfire/pkg/fuelmodels"
	"github.com/ecoclim/spitfire/pkg/params"
)

func main() {
	configFile := flag.String("config", "firesim.yaml", "Path to simulation config file")
	flag.Parse()

	cfg, err := config.NewConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config invalid: %v\n", err)
		os.Exit(1)
	}

	failures := 0
	fail := func(format string, args ...interface{}) {
		fmt.Printf("✗ "+format+"\n", args...)
		failures++
	}
	ok := func(format string, args ...interface{}) {
		fmt.Printf("✓ "+format+"\n", args...)
	}

	ok("config %s", *configFile)

	if _, err := fireweather.New(fireweather.IndexKind(cfg.Index)); err != nil {
		fail("%v", err)
	} else {
		ok("fire weather index %q", cfg.Index)
	}

	if _, err := params.FromYAML(cfg.ParamsFile); err != nil {
		fail("parameter file %s: %v", cfg.ParamsFile, err)
	} else {
		ok("parameter file %s", cfg.ParamsFile)
	}

	if days, err := weather.ReadCSV(cfg.WeatherFile); err != nil {
		fail("weather file %s: %v", cfg.WeatherFile, err)
	} else {
		ok("weather file %s (%d days)", cfg.WeatherFile, len(days))
	}

	fmt.Printf("\nSites (%d):\n", len(cfg.Sites))
	for _, site := range cfg.Sites {
		fm, err := fuelmodels.ByIndex(site.FuelModel)
		if err != nil {
			fail("site %s: %v", site.Name, err)
			continue
		}
		ok("site %s: fuel model %s (%s), %g ignitions/km²/day",
			site.Name, fm.Code, fm.Name, site.Ignitions)
	}

	if failures > 0 {
		fmt.Printf("\n%d problem(s)\n", failures)
		os.Exit(1)
	}
}
