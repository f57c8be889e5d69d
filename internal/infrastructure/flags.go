package infrastructure

import (
	"flag"
	"hartree-fock/internal/domain"
	"strings"
)

// CommandLine parses the CLI flags. Only flags given explicitly override
// values read from the config file.
type CommandLine struct {
	fs *flag.FlagSet

	ConfigPath string
	start      float64
	stop       float64
	points     int
	zeta       float64
	basis      string
	decimals   int
	logLevel   string
}

func NewCommandLine(name string) *CommandLine {
	c := &CommandLine{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	defaults := domain.DefaultConfig()

	c.fs.StringVar(&c.ConfigPath, "config", "", "Path to config file")
	c.fs.Float64Var(&c.start, "start", defaults.Start, "Start of the interval")
	c.fs.Float64Var(&c.stop, "stop", defaults.Stop, "End of the interval")
	c.fs.IntVar(&c.points, "points", defaults.Points, "Number of grid points")
	c.fs.Float64Var(&c.zeta, "zeta", defaults.Zeta, "Slater exponent")
	c.fs.StringVar(&c.basis, "basis", strings.Join(defaults.Basis, ","), "Comma-separated STO-nG basis names")
	c.fs.IntVar(&c.decimals, "decimals", defaults.Decimals, "Digits after the decimal point")
	c.fs.StringVar(&c.logLevel, "log-level", defaults.LogLevel, "Log level")
	return c
}

func (c *CommandLine) Parse(args []string) error {
	return c.fs.Parse(args)
}

// Apply copies every explicitly set flag into config.
func (c *CommandLine) Apply(config *domain.Config) {
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			config.Start = c.start
		case "stop":
			config.Stop = c.stop
		case "points":
			config.Points = c.points
		case "zeta":
			config.Zeta = c.zeta
		case "basis":
			config.Basis = splitList(c.basis)
		case "decimals":
			config.Decimals = c.decimals
		case "log-level":
			config.LogLevel = c.logLevel
		}
	})
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
