// Package params defines the immutable parameter set of the fire behavior
// model and its YAML representation. Parameters are loaded once at startup;
// nothing mutates a FireParams afterwards, so a single instance can be
// shared by every fuel state and model in a simulation.
package params

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
)

// ClassArray holds one value per fuel class, indexed by fuelclass.Class.
type ClassArray = [fuelclass.NumClasses]float64

// CWDArray holds one value per coarse woody debris class.
type CWDArray = [fuelclass.NumCWDClasses]float64

// Meta carries the units and description recorded alongside a parameter
// value in the parameter file.
type Meta struct {
	Units       string
	Description string
}

// FireParams is the full parameter set of the fire model. Per-class arrays
// are indexed by fuelclass.Class.
type FireParams struct {
	BulkDensity      ClassArray // fuel bulk density [kg/m³]
	SAV              ClassArray // surface-area-to-volume ratio [/cm]
	MinMoisture      ClassArray // moisture below which fuel burns completely
	MidMoisture      ClassArray // boundary between the two linear burnt-fraction regimes
	LowMoistureCoeff ClassArray
	LowMoistureSlope ClassArray
	MidMoistureCoeff ClassArray
	MidMoistureSlope ClassArray
	CWDFrac          CWDArray // split of coarse woody debris across size classes

	MinerTotal       float64 // total mineral content fraction of fuel
	MineralDampening float64 // mineral dampening coefficient for reaction intensity
	FuelEnergy       float64 // fuel heat content [kJ/kg]
	MaxDuration      float64 // maximum fire duration [min]
	DurationSlope    float64 // shape parameter of the fire duration curve
	ParticleDensity  float64 // fuel particle density [kg/m³]
	DryingRatio      float64 // scales SAV to the fuel moisture response rate
	FDIAlpha         float64 // scales the fire weather index to fire danger

	// Metadata holds units and descriptions by parameter key when the
	// parameters came from a file; nil otherwise.
	Metadata map[string]Meta
}

// fileEntry is the on-disk form of one parameter:
// key: {value, units, description}.
type fileEntry struct {
	Value       interface{} `yaml:"value"`
	Units       string      `yaml:"units"`
	Description string      `yaml:"description"`
}

// FromYAML loads a FireParams from a parameter file. Missing keys and
// arrays of the wrong length are reported by parameter name; nothing is
// defaulted silently.
func FromYAML(path string) (*FireParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	var raw map[string]fileEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}

	p := &FireParams{Metadata: make(map[string]Meta, len(raw))}
	for key, entry := range raw {
		p.Metadata[key] = Meta{Units: entry.Units, Description: entry.Description}
	}

	load := func(dst *ClassArray, key string) error {
		vals, err := floatList(raw, key, fuelclass.NumClasses)
		if err != nil {
			return err
		}
		copy(dst[:], vals)
		return nil
	}

	for _, field := range []struct {
		dst *ClassArray
		key string
	}{
		{&p.BulkDensity, "bulk_density"},
		{&p.SAV, "sav"},
		{&p.MinMoisture, "min_moisture"},
		{&p.MidMoisture, "mid_moisture"},
		{&p.LowMoistureCoeff, "low_moisture_coeff"},
		{&p.LowMoistureSlope, "low_moisture_slope"},
		{&p.MidMoistureCoeff, "mid_moisture_coeff"},
		{&p.MidMoistureSlope, "mid_moisture_slope"},
	} {
		if err := load(field.dst, field.key); err != nil {
			return nil, err
		}
	}

	cwd, err := floatList(raw, "cwd_frac", fuelclass.NumCWDClasses)
	if err != nil {
		return nil, err
	}
	copy(p.CWDFrac[:], cwd)

	for _, field := range []struct {
		dst *float64
		key string
	}{
		{&p.MinerTotal, "miner_total"},
		{&p.MineralDampening, "mineral_dampening"},
		{&p.FuelEnergy, "fuel_energy"},
		{&p.MaxDuration, "max_duration"},
		{&p.DurationSlope, "duration_slope"},
		{&p.ParticleDensity, "particle_density"},
		{&p.DryingRatio, "drying_ratio"},
		{&p.FDIAlpha, "fdi_alpha"},
	} {
		v, err := floatScalar(raw, field.key)
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}

	return p, nil
}

// floatList extracts a parameter whose value must be a list of exactly n
// numbers.
func floatList(raw map[string]fileEntry, key string, n int) ([]float64, error) {
	entry, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("parameter %q missing", key)
	}
	list, ok := entry.Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("parameter %q: expected a list of %d values", key, n)
	}
	if len(list) != n {
		return nil, fmt.Errorf("parameter %q: expected %d values, got %d", key, n, len(list))
	}
	vals := make([]float64, n)
	for i, v := range list {
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("parameter %q: element %d is not a number", key, i)
		}
		vals[i] = f
	}
	return vals, nil
}

// floatScalar extracts a parameter whose value must be a single number.
func floatScalar(raw map[string]fileEntry, key string) (float64, error) {
	entry, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("parameter %q missing", key)
	}
	f, ok := asFloat(entry.Value)
	if !ok {
		return 0, fmt.Errorf("parameter %q: expected a number", key)
	}
	return f, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

// describeOrder fixes the row order of the Describe table.
var describeOrder = []string{
	"bulk_density", "sav", "min_moisture", "mid_moisture",
	"low_moisture_coeff", "low_moisture_slope",
	"mid_moisture_coeff", "mid_moisture_slope", "cwd_frac",
	"miner_total", "mineral_dampening", "fuel_energy",
	"max_duration", "duration_slope", "particle_density",
	"drying_ratio", "fdi_alpha",
}

// Describe renders a parameter summary table with units and descriptions
// from the file metadata when present.
func (p *FireParams) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-44s %-10s %s\n", "Parameter", "Value", "Units", "Description")
	b.WriteString(strings.Repeat("-", 90))
	b.WriteByte('\n')
	for _, key := range describeOrder {
		meta := p.Metadata[key]
		fmt.Fprintf(&b, "%-20s %-44s %-10s %s\n", key, p.valueString(key), meta.Units, meta.Description)
	}
	return b.String()
}

func (p *FireParams) valueString(key string) string {
	classArr := func(a ClassArray) string {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	switch key {
	case "bulk_density":
		return classArr(p.BulkDensity)
	case "sav":
		return classArr(p.SAV)
	case "min_moisture":
		return classArr(p.MinMoisture)
	case "mid_moisture":
		return classArr(p.MidMoisture)
	case "low_moisture_coeff":
		return classArr(p.LowMoistureCoeff)
	case "low_moisture_slope":
		return classArr(p.LowMoistureSlope)
	case "mid_moisture_coeff":
		return classArr(p.MidMoistureCoeff)
	case "mid_moisture_slope":
		return classArr(p.MidMoistureSlope)
	case "cwd_frac":
		parts := make([]string, len(p.CWDFrac))
		for i, v := range p.CWDFrac {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case "miner_total":
		return fmt.Sprintf("%g", p.MinerTotal)
	case "mineral_dampening":
		return fmt.Sprintf("%g", p.MineralDampening)
	case "fuel_energy":
		return fmt.Sprintf("%g", p.FuelEnergy)
	case "max_duration":
		return fmt.Sprintf("%g", p.MaxDuration)
	case "duration_slope":
		return fmt.Sprintf("%g", p.DurationSlope)
	case "particle_density":
		return fmt.Sprintf("%g", p.ParticleDensity)
	case "drying_ratio":
		return fmt.Sprintf("%g", p.DryingRatio)
	case "fdi_alpha":
		return fmt.Sprintf("%g", p.FDIAlpha)
	}
	return ""
}

// Zeros returns a FireParams with every value zeroed, for tests that build
// parameter sets field by field.
func Zeros() *FireParams {
	return &FireParams{}
}

// Defaults returns the standard parameter set for the six-class fuel model,
// following the FATES fire defaults for this equation family. Class order is
// twigs, small branches, large branches, trunks, dead leaves, live grass.
func Defaults() *FireParams {
	return &FireParams{
		BulkDensity:      ClassArray{15.4, 16.8, 19.6, 999.0, 4.0, 4.0},
		SAV:              ClassArray{13.0, 3.58, 0.98, 0.2, 66.0, 66.0},
		MinMoisture:      ClassArray{0.18, 0.12, 0.0, 0.0, 0.24, 0.24},
		MidMoisture:      ClassArray{0.72, 0.51, 0.38, 1.0, 0.8, 0.8},
		LowMoistureCoeff: ClassArray{1.12, 1.09, 0.98, 0.8, 1.15, 1.15},
		LowMoistureSlope: ClassArray{0.62, 0.72, 0.85, 0.8, 0.62, 0.62},
		MidMoistureCoeff: ClassArray{2.35, 1.47, 1.06, 0.8, 3.2, 3.2},
		MidMoistureSlope: ClassArray{2.35, 1.47, 1.06, 0.8, 3.2, 3.2},
		CWDFrac:          CWDArray{0.045, 0.075, 0.21, 0.67},
		MinerTotal:       0.055,
		MineralDampening: 0.41739,
		FuelEnergy:       18000.0,
		MaxDuration:      240.0,
		DurationSlope:    -11.06,
		ParticleDensity:  513.0,
		DryingRatio:      5000.0,
		FDIAlpha:         0.00037,
	}
}
