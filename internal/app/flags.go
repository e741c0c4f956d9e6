package app

import (
	"flag"
	"strconv"

	"sand-ca/internal/config"
	"sand-ca/internal/sand"
)

// Config represents the command-line parameters shared by the front ends.
// Zero values mean "not given" so lower configuration layers can supply them.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	File     string
	EnvFile  string
	LogLevel string
	LogFile  string
	Sound    bool
	Set      config.KVList
}

// NewConfig returns a Config that defers every setting to the config layers.
func NewConfig() *Config {
	return &Config{EnvFile: ".env"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (sand, sand-terrain)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.File, "config", c.File, "YAML, TOML or JSON settings file")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "dotenv file with SAND_* variables")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to a rotated file instead of stderr")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play activity sound")
	fs.Var(&c.Set, "set", "simulation option in key=value form (repeatable)")
}

// Resolve layers the flags over the configuration sources.
func (c *Config) Resolve() (config.Settings, error) {
	overrides, err := config.ParseOverrides(c.Set)
	if err != nil {
		return config.Settings{}, err
	}
	if c.Sim != "" {
		overrides[config.KeySim] = c.Sim
	}
	if c.Scale > 0 {
		overrides[config.KeyScale] = strconv.Itoa(c.Scale)
	}
	if c.TPS > 0 {
		overrides[config.KeyTPS] = strconv.Itoa(c.TPS)
	}
	if c.Seed != 0 {
		overrides[sand.KeySeed] = strconv.FormatInt(c.Seed, 10)
	}
	if c.LogLevel != "" {
		overrides[config.KeyLogLevel] = c.LogLevel
	}
	if c.LogFile != "" {
		overrides[config.KeyLogFile] = c.LogFile
	}
	if c.Sound {
		overrides[config.KeySound] = "true"
	}
	return config.Load(config.Sources{EnvFile: c.EnvFile, File: c.File, Overrides: overrides})
}
