package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func load(t *testing.T, args []string, required ...string) (*config.Config, error) {
	t.Helper()
	fs := config.NewFlagSet("test")
	require.NoError(t, fs.Parse(args))
	return config.Load(fs, required...)
}

// TestLoad_Defaults returns flag defaults when nothing is set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.ObstacleRatio)
	assert.Equal(t, config.OrderChain, cfg.Order)
	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 1_000_000, cfg.MaxCells)
	assert.Zero(t, cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

// TestLoad_ShortFlags parses the original short flag names.
func TestLoad_ShortFlags(t *testing.T) {
	cfg, err := load(t, []string{"-c", "5", "-r", "4", "-s", "0", "-q", "1", "-e", "4", "-t", "3", "-o", "35"},
		"cols", "rows", "start_x", "start_y", "end_x", "end_y")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Cols)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, gridgraph.Point{X: 0, Y: 1}, cfg.Start())
	assert.Equal(t, gridgraph.Point{X: 4, Y: 3}, cfg.End())
	assert.Equal(t, 35, cfg.ObstacleRatio)
}

// TestLoad_Required reports every missing key.
func TestLoad_Required(t *testing.T) {
	_, err := load(t, []string{"--cols", "3"}, "cols", "rows", "start_x")
	require.ErrorIs(t, err, config.ErrMissingKey)
	assert.Contains(t, err.Error(), "rows, start_x")
}

// TestLoad_Precedence checks flag > env > file > default.
func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gridpath.yaml")
	require.NoError(t, os.WriteFile(file, []byte("cols: 11\nrows: 12\nlog_level: warn\nmax_expansions: 9\n"), 0o600))

	t.Setenv("GRIDPATH_ROWS", "22")
	t.Setenv("GRIDPATH_MAX_EXPANSIONS", "99")

	cfg, err := load(t, []string{"--config", file, "--max-expansions", "7"}, "cols", "rows")
	require.NoError(t, err)

	assert.Equal(t, 11, cfg.Cols, "file beats default")
	assert.Equal(t, 22, cfg.Rows, "env beats file")
	assert.Equal(t, 7, cfg.MaxExpansions, "flag beats env")
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestLoad_BadConfigFile wraps the read error.
func TestLoad_BadConfigFile(t *testing.T) {
	_, err := load(t, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

// TestValidate rejects out-of-range values.
func TestValidate(t *testing.T) {
	base := func() config.Config {
		return config.Config{ObstacleRatio: 20, Order: config.OrderChain, Mode: "development"}
	}
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"RatioNegative", func(c *config.Config) { c.ObstacleRatio = -1 }},
		{"RatioAbove100", func(c *config.Config) { c.ObstacleRatio = 101 }},
		{"Order", func(c *config.Config) { c.Order = "backwards" }},
		{"Mode", func(c *config.Config) { c.Mode = "staging" }},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "loud" }},
		{"MaxExpansions", func(c *config.Config) { c.MaxExpansions = -1 }},
		{"MaxCells", func(c *config.Config) { c.MaxCells = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, base().Validate())
}

// TestObstacleSpec applies list-over-density precedence.
func TestObstacleSpec(t *testing.T) {
	cfg := config.Config{ObstacleRatio: 30}
	spec, err := cfg.ObstacleSpec()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Density(30), spec)

	file := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"data": "[[0,1],[3,2]]"}`), 0o600))
	cfg.ObstacleList = file
	spec, err = cfg.ObstacleSpec()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.List(gridgraph.Point{X: 0, Y: 1}, gridgraph.Point{X: 3, Y: 2}), spec)

	cfg.ObstacleList = filepath.Join(t.TempDir(), "absent.json")
	_, err = cfg.ObstacleSpec()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestObstacleFile maps the legacy boolean values.
func TestObstacleFile(t *testing.T) {
	assert.Equal(t, "", config.Config{}.ObstacleFile())
	assert.Equal(t, "", config.Config{ObstacleList: "False"}.ObstacleFile())
	assert.Equal(t, config.DefaultObstacleFile, config.Config{ObstacleList: "True"}.ObstacleFile())
	assert.Equal(t, "walls.yaml", config.Config{ObstacleList: "walls.yaml"}.ObstacleFile())
}

// TestSearchOptions adds the seed only when set.
func TestSearchOptions(t *testing.T) {
	assert.Len(t, config.Config{}.SearchOptions(), 1)
	assert.Len(t, config.Config{Seed: 5}.SearchOptions(), 2)
}

// TestFields lists every key once.
func TestFields(t *testing.T) {
	fields := config.Config{Mode: "production", Addr: ":9000"}.Fields()
	assert.Equal(t, "production", fields["mode"])
	assert.Equal(t, ":9000", fields["addr"])
	assert.Len(t, fields, 14)
}

// TestNewLogger picks the level and formatter from the mode.
func TestNewLogger(t *testing.T) {
	log, err := config.NewLogger(config.Config{Mode: "development"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log, err = config.NewLogger(config.Config{Mode: "production"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log, err = config.NewLogger(config.Config{Mode: "production", LogLevel: "trace"})
	require.NoError(t, err)
	assert.Equal(t, logrus.TraceLevel, log.GetLevel())

	_, err = config.NewLogger(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

// TestNewLogger_File writes entries to the rotating file sink.
func TestNewLogger_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "gridpath.log")
	log, err := config.NewLogger(config.Config{Mode: "production", LogFile: file})
	require.NoError(t, err)
	log.SetOutput(os.Stderr)

	log.WithField("cols", 5).Info("hello")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"cols":5`)
}
