package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
)

func TestFromYAML(t *testing.T) {
	p, err := FromYAML(filepath.Join("testdata", "fire_params.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ClassArray{15.4, 16.8, 19.6, 999.0, 4.0, 4.0}, p.BulkDensity)
	assert.Equal(t, ClassArray{13.0, 3.58, 0.98, 0.2, 66.0, 66.0}, p.SAV)
	assert.Equal(t, CWDArray{0.045, 0.075, 0.21, 0.67}, p.CWDFrac)
	assert.Equal(t, 0.055, p.MinerTotal)
	assert.Equal(t, 0.41739, p.MineralDampening)
	assert.Equal(t, 18000.0, p.FuelEnergy)
	assert.Equal(t, -11.06, p.DurationSlope)
	assert.Equal(t, 0.00037, p.FDIAlpha)

	require.Contains(t, p.Metadata, "fuel_energy")
	assert.Equal(t, "kJ kg-1", p.Metadata["fuel_energy"].Units)
}

func TestFromYAMLMatchesDefaults(t *testing.T) {
	p, err := FromYAML(filepath.Join("testdata", "fire_params.yaml"))
	require.NoError(t, err)

	d := Defaults()
	d.Metadata = p.Metadata
	assert.Equal(t, d, p)
}

func TestFromYAMLMissingFile(t *testing.T) {
	_, err := FromYAML(filepath.Join("testdata", "no_such_file.yaml"))
	require.Error(t, err)
}

func TestFromYAMLMissingKey(t *testing.T) {
	path := writeParams(t, `
bulk_density:
  value: [15.4, 16.8, 19.6, 999.0, 4.0, 4.0]
  units: kg m-3
`)
	_, err := FromYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "sav" missing`)
}

func TestFromYAMLWrongLength(t *testing.T) {
	full, err := os.ReadFile(filepath.Join("testdata", "fire_params.yaml"))
	require.NoError(t, err)

	truncated := strings.Replace(string(full),
		"value: [0.045, 0.075, 0.21, 0.67]",
		"value: [0.045, 0.075, 0.21]", 1)
	require.NotEqual(t, string(full), truncated)

	_, err = FromYAML(writeParams(t, truncated))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "cwd_frac": expected 4 values, got 3`)
}

func TestFromYAMLScalarWhereListExpected(t *testing.T) {
	full, err := os.ReadFile(filepath.Join("testdata", "fire_params.yaml"))
	require.NoError(t, err)

	mangled := strings.Replace(string(full),
		"value: [13.0, 3.58, 0.98, 0.2, 66.0, 66.0]",
		"value: 13.0", 1)
	require.NotEqual(t, string(full), mangled)

	_, err = FromYAML(writeParams(t, mangled))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "sav"`)
}

func TestZeros(t *testing.T) {
	p := Zeros()
	for c := fuelclass.Class(0); c < fuelclass.NumClasses; c++ {
		assert.Zero(t, p.BulkDensity[c])
		assert.Zero(t, p.SAV[c])
	}
	assert.Zero(t, p.FuelEnergy)
	assert.Zero(t, p.DryingRatio)
}

func TestDescribe(t *testing.T) {
	p, err := FromYAML(filepath.Join("testdata", "fire_params.yaml"))
	require.NoError(t, err)

	table := p.Describe()
	for _, key := range describeOrder {
		assert.Contains(t, table, key)
	}
	assert.Contains(t, table, "kJ kg-1")

	// Defaults carry no metadata but still describe every value.
	table = Defaults().Describe()
	assert.Contains(t, table, "drying_ratio")
	assert.Contains(t, table, "5000")
}

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
