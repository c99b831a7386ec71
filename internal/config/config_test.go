package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmmd.yaml")
	content := `num_chr: 2
coo_dis: -1
num_autosomes: 19
allosomes: [X]
dir_fas: /data/mm10
w_min: 3
w_max: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		NumChr:       2,
		CooDis:       -1,
		NumAutosomes: 19,
		Allosomes:    []string{"X"},
		DirFas:       "/data/mm10",
		WMin:         3,
		WMax:         6,
	}, cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmmd.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"w_min": 2, "w_max": 4}`), 0o644))
	t.Setenv("DMMD_W_MAX", "9")
	t.Setenv("DMMD_COO_DIS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.WMin)
	assert.Equal(t, 9, cfg.WMax)
	assert.Equal(t, 5, cfg.CooDis)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"w_min zero", func(c *Config) { c.WMin = 0 }, []string{"w_min"}},
		{"w_max below w_min", func(c *Config) { c.WMin, c.WMax = 5, 4 }, []string{"w_max"}},
		{"single window", func(c *Config) { c.WMin, c.WMax = 4, 4 }, nil},
		{"negative counts", func(c *Config) { c.NumChr, c.NumAutosomes = -1, -2 }, []string{"num_chr", "num_autosomes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, f := range tt.fields {
				assert.Contains(t, err.Error(), "config "+f)
			}
			var cerr *ConfigError
			assert.True(t, errors.As(err, &cerr))
		})
	}
}
