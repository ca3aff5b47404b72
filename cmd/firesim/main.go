package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/ecoclim/spitfire/internal/config"
	"github.com/ecoclim/spitfire/internal/log"
	"github.com/ecoclim/spitfire/internal/sim"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "firesim.yaml", "Path to simulation configuration file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("firesim %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	filename, _ := filepath.Abs(*cfgFile)
	cfg, err := config.NewConfig(filename)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if cfg.Debug && !*debug {
		if err := log.Init(true); err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}

	simulator, err := sim.New(cfg)
	if err != nil {
		log.Errorf("Failed to set up simulation: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := simulator.Run(ctx)
	if err != nil {
		log.Errorf("Simulation error: %v", err)
		os.Exit(1)
	}

	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			log.Errorf("Failed to create output file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := sim.WriteResults(out, results); err != nil {
		log.Errorf("Failed to write results: %v", err)
		os.Exit(1)
	}
	if cfg.OutputFile != "" {
		log.Infof("Wrote %d site-days to %s", len(results), cfg.OutputFile)
	}
}
