package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/obstacles"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "GRIDPATH"

// DefaultObstacleFile is read when --obstacle_list is given the legacy value "True".
const DefaultObstacleFile = "your_obstacle.json"

// Output orders for the CLI.
const (
	OrderChain   = "chain"   // goal's predecessor first, start last, goal excluded
	OrderForward = "forward" // start to goal inclusive
)

var (
	// ErrMissingKey is returned by Load when a required key was not supplied.
	ErrMissingKey = errors.New("config: required key not set")
	// ErrInvalid is returned by Validate for out-of-range values.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the merged configuration of the CLI and the HTTP service.
type Config struct {
	Cols          int    `mapstructure:"cols"`
	Rows          int    `mapstructure:"rows"`
	StartX        int    `mapstructure:"start_x"`
	StartY        int    `mapstructure:"start_y"`
	EndX          int    `mapstructure:"end_x"`
	EndY          int    `mapstructure:"end_y"`
	ObstacleRatio int    `mapstructure:"obstacle_ratio"`
	ObstacleList  string `mapstructure:"obstacle_list"`
	Seed          int64  `mapstructure:"seed"`
	Order         string `mapstructure:"order"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Mode     string `mapstructure:"mode"`

	Addr          string `mapstructure:"addr"`
	MaxExpansions int    `mapstructure:"max_expansions"`
	MaxCells      int    `mapstructure:"max_cells"`
}

// NewFlagSet registers every configuration flag on a new set.
// Short names follow the original command line: -c -r -s -q -e -t -o -l.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.IntP("cols", "c", 0, "number of grid columns")
	fs.IntP("rows", "r", 0, "number of grid rows")
	fs.IntP("start_x", "s", 0, "x coordinate of the start cell")
	fs.IntP("start_y", "q", 0, "y coordinate of the start cell")
	fs.IntP("end_x", "e", 0, "x coordinate of the end cell")
	fs.IntP("end_y", "t", 0, "y coordinate of the end cell")
	fs.IntP("obstacle_ratio", "o", 20, "per-cell obstacle probability in percent")
	fs.StringP("obstacle_list", "l", "", `obstacle document path ({"data": [[x,y],...]}); overrides obstacle_ratio`)
	fs.Int64("seed", 0, "seed for obstacle draws (0 picks a time-based seed)")
	fs.String("order", OrderChain, "path output order: chain or forward")

	fs.String("config", "", "YAML or JSON configuration file")
	fs.String("log-level", "", "trace, debug, info, warn or error (default depends on mode)")
	fs.String("log-file", "", "also write JSON logs to this rotating file")
	fs.String("mode", "development", "development or production")

	fs.String("addr", ":8080", "HTTP listen address")
	fs.Int("max-expansions", 0, "cap on settled cells per search (0 = no cap)")
	fs.Int("max-cells", 1_000_000, "largest cols*rows accepted by the HTTP service (0 = no cap)")

	return fs
}

// Load merges fs, the environment and the optional config file into a Config.
// fs must already be parsed. Keys listed in required must be supplied by one of
// the three sources; flag defaults do not count.
func Load(fs *pflag.FlagSet, required ...string) (*Config, error) {
	v := viper.New()

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(keyOf(f.Name), f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("config: bind flags: %w", bindErr)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var missing []string
	for _, key := range required {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &cfg, nil
}

func keyOf(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// Validate checks values that do not depend on the grid. Grid dimensions and
// endpoint bounds are checked by the search itself.
func (c Config) Validate() error {
	if c.ObstacleRatio < 0 || c.ObstacleRatio > 100 {
		return fmt.Errorf("%w: obstacle_ratio %d outside [0,100]", ErrInvalid, c.ObstacleRatio)
	}
	if c.Order != OrderChain && c.Order != OrderForward {
		return fmt.Errorf("%w: order %q (want %s or %s)", ErrInvalid, c.Order, OrderChain, OrderForward)
	}
	if c.Mode != "development" && c.Mode != "production" {
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d is negative", ErrInvalid, c.MaxExpansions)
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells %d is negative", ErrInvalid, c.MaxCells)
	}

	return nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Start returns the start cell.
func (c Config) Start() gridgraph.Point {
	return gridgraph.Point{X: c.StartX, Y: c.StartY}
}

// End returns the end cell.
func (c Config) End() gridgraph.Point {
	return gridgraph.Point{X: c.EndX, Y: c.EndY}
}

// ObstacleFile returns the obstacle document path, or "" when density is used.
func (c Config) ObstacleFile() string {
	switch c.ObstacleList {
	case "", "False", "false":
		return ""
	case "True", "true":
		return DefaultObstacleFile
	default:
		return c.ObstacleList
	}
}

// ObstacleSpec loads the obstacle document if one is configured and applies
// list-over-density precedence.
func (c Config) ObstacleSpec() (gridgraph.ObstacleSpec, error) {
	path := c.ObstacleFile()
	if path == "" {
		return gridgraph.Density(c.ObstacleRatio), nil
	}
	cells, err := obstacles.Load(path)
	if err != nil {
		return gridgraph.ObstacleSpec{}, err
	}

	return gridgraph.List(cells...), nil
}

// SearchOptions translates the seed and expansion cap into astar options.
func (c Config) SearchOptions() []astar.Option {
	opts := []astar.Option{astar.WithMaxExpansions(c.MaxExpansions)}
	if c.Seed != 0 {
		opts = append(opts, astar.WithGridOptions(gridgraph.WithSeed(c.Seed)))
	}

	return opts
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"cols":           c.Cols,
		"rows":           c.Rows,
		"start":          c.Start(),
		"end":            c.End(),
		"obstacle_ratio": c.ObstacleRatio,
		"obstacle_list":  c.ObstacleFile(),
		"seed":           c.Seed,
		"order":          c.Order,
		"log_level":      c.LogLevel,
		"log_file":       c.LogFile,
		"mode":           c.Mode,
		"addr":           c.Addr,
		"max_expansions": c.MaxExpansions,
		"max_cells":      c.MaxCells,
	}
}
