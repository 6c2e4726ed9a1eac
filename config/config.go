// Package config loads a cart deployment: its locations, the packed
// distance/direction/priority table and optimizer defaults.
//
// The file is YAML. Costs and directions are given as triangles so that the
// symmetric and anti-symmetric halves cannot disagree:
//
//	costs[i]      lists cost(i, j)      for j > i
//	directions[i] lists direction(j, i) for j < i
//
// Alternatively a single packed table (the on-device layout) may be given
// under packed. Structural checks use go-playground/validator.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cartroute/distmat"
)

// Sentinel errors.
var (
	ErrRead         = errors.New("config: read failed")
	ErrParse        = errors.New("config: parse failed")
	ErrInvalid      = errors.New("config: invalid")
	ErrUnknownPlace = errors.New("config: unknown location")
)

// Location is one physical stop, in matrix index order.
type Location struct {
	Name     string `yaml:"name" validate:"required,max=16"`
	Priority uint8  `yaml:"priority"`
}

// Optimizer holds planner defaults.
type Optimizer struct {
	MaxIters  int    `yaml:"max_iters" validate:"gte=0,lte=10000"`
	Source    string `yaml:"source"`
	ReturnLeg *bool  `yaml:"return_leg"`
}

// Log selects the log level.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Storage points at the entry device.
type Storage struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// Config is a parsed deployment file.
type Config struct {
	Locations  []Location            `yaml:"locations" validate:"required,min=1,max=16,unique=Name,dive"`
	Costs      [][]uint8             `yaml:"costs"`
	Directions [][]distmat.Direction `yaml:"directions"`
	Packed     [][]uint8             `yaml:"packed"`
	Optimizer  Optimizer             `yaml:"optimizer"`
	Log        Log                   `yaml:"log"`
	Storage    Storage               `yaml:"storage"`
}

// DefaultMaxIters is used when the file leaves optimizer.max_iters at zero.
const DefaultMaxIters = 8

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(tablesShape, Config{})
}

// tablesShape checks that exactly one table form is present and that its rows
// have the triangle or square lengths implied by the location count.
func tablesShape(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	n := len(c.Locations)

	switch {
	case len(c.Packed) > 0 && (len(c.Costs) > 0 || len(c.Directions) > 0):
		sl.ReportError(c.Packed, "Packed", "packed", "exclusive", "")
		return
	case len(c.Packed) > 0:
		if len(c.Packed) != n {
			sl.ReportError(c.Packed, "Packed", "packed", "rows", "")
			return
		}
		for _, row := range c.Packed {
			if len(row) != n {
				sl.ReportError(c.Packed, "Packed", "packed", "square", "")
				return
			}
		}
		return
	}

	if len(c.Costs) != n {
		sl.ReportError(c.Costs, "Costs", "costs", "rows", "")
		return
	}
	for i, row := range c.Costs {
		if len(row) != n-1-i {
			sl.ReportError(c.Costs, "Costs", "costs", "triangle", "")
			return
		}
	}
	if len(c.Directions) == 0 {
		return
	}
	if len(c.Directions) != n {
		sl.ReportError(c.Directions, "Directions", "directions", "rows", "")
		return
	}
	for i, row := range c.Directions {
		if len(row) != i {
			sl.ReportError(c.Directions, "Directions", "directions", "triangle", "")
			return
		}
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a deployment file.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Optimizer.Source != "" {
		if _, err := c.IndexOf(c.Optimizer.Source); err != nil {
			return nil, fmt.Errorf("%w: optimizer.source: %w", ErrInvalid, err)
		}
	}
	if c.Optimizer.MaxIters == 0 {
		c.Optimizer.MaxIters = DefaultMaxIters
	}

	return &c, nil
}

// Matrix builds the distance matrix. Structural errors surface as the
// distmat sentinels.
func (c *Config) Matrix() (*distmat.Matrix, error) {
	if len(c.Packed) > 0 {
		return distmat.NewPacked(c.Packed)
	}

	n := len(c.Locations)
	cost := make([][]uint8, n)
	prio := make([]uint8, n)
	var dir [][]distmat.Direction
	if len(c.Directions) > 0 {
		dir = make([][]distmat.Direction, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		cost[i] = make([]uint8, n)
		prio[i] = c.Locations[i].Priority
		if dir != nil {
			dir[i] = make([]distmat.Direction, n)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			cost[i][j] = c.Costs[i][j-i-1]
			cost[j][i] = cost[i][j]
		}
		if dir == nil {
			continue
		}
		for j = 0; j < i; j++ {
			d := c.Directions[i][j] // from j to i
			if !d.Valid() {
				return nil, fmt.Errorf("directions[%d][%d]: %w", i, j, distmat.ErrBadDirection)
			}
			dir[j][i] = d
			dir[i][j] = d.Inverse()
		}
	}

	return distmat.FromTables(cost, dir, prio)
}

// IndexOf returns the matrix index of the named location, case-insensitively.
func (c *Config) IndexOf(name string) (uint8, error) {
	for i, l := range c.Locations {
		if strings.EqualFold(l.Name, name) {
			return uint8(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPlace)
}

// Indices resolves a list of names.
func (c *Config) Indices(names ...string) ([]uint8, error) {
	out := make([]uint8, 0, len(names))
	for _, name := range names {
		i, err := c.IndexOf(name)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}

	return out, nil
}

// Names returns location names in matrix index order.
func (c *Config) Names() []string {
	out := make([]string, len(c.Locations))
	for i, l := range c.Locations {
		out[i] = l.Name
	}

	return out
}

// ReturnLeg reports whether routes close back to the source (default true).
func (c *Config) ReturnLeg() bool {
	return c.Optimizer.ReturnLeg == nil || *c.Optimizer.ReturnLeg
}

// SlogLevel maps the configured level to slog, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel maps debug, info, warn, error to slog levels; anything else is
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
