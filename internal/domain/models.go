package domain

import (
	"errors"
)

// Config представляет конфигурацию приложения
type Config struct {
	Start    float64  `yaml:"start"`
	Stop     float64  `yaml:"stop"`
	Points   int      `yaml:"points"`
	Zeta     float64  `yaml:"zeta"`
	Basis    []string `yaml:"basis"`
	Decimals int      `yaml:"decimals"`
	LogLevel string   `yaml:"log_level"`
	LogFile  string   `yaml:"log_file"`
}

// DefaultConfig returns the grid the original plots were drawn on:
// 1000 points over [-5, 5] for a hydrogen-like 1s orbital.
func DefaultConfig() Config {
	return Config{
		Start:    -5,
		Stop:     5,
		Points:   1000,
		Zeta:     1,
		Basis:    []string{BasisSTO1G, BasisSTO2G, BasisSTO3G},
		Decimals: 6,
		LogLevel: "info",
	}
}

// Series именованный столбец значений
type Series struct {
	Name   string
	Values []float64
}

// Table holds equally long columns sampled on one grid. Columns[0] is
// always the grid itself.
type Table struct {
	Columns    []Series
	Deviations map[string]float64
}

// Rows returns the number of samples per column.
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (Series, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Series{}, false
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownBasis    = errors.New("unknown basis")
	ErrInvalidConfig   = errors.New("invalid config")
)
