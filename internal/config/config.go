// Package config assembles front-end settings and simulation options from
// layered sources: built-in defaults, a .env file, an optional config file,
// SAND_* environment variables and finally explicit key=value overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"sand-ca/internal/sand"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment, so
// chunk is SAND_CHUNK and log_level is SAND_LOG_LEVEL.
const EnvPrefix = "SAND"

// Front-end setting keys. Simulation keys are the ones sand.ConfigKeys lists.
const (
	KeySim      = "sim"
	KeyScale    = "scale"
	KeyTPS      = "tps"
	KeySound    = "sound"
	KeyVolume   = "volume"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Settings is the resolved configuration.
type Settings struct {
	Sim      string
	Scale    int
	TPS      int
	Sound    bool
	Volume   float64
	LogLevel string
	LogFile  string

	// Params holds simulation options in the form the registry factories
	// accept.
	Params map[string]string
}

// Sources names the optional inputs to Load.
type Sources struct {
	// EnvFile is loaded into the process environment when it exists.
	// Variables already set are not replaced.
	EnvFile string
	// File is a YAML, TOML or JSON file selected by extension.
	File string
	// Overrides win over every other source.
	Overrides map[string]string
}

// Defaults returns the settings used when no source names a key.
func Defaults() Settings {
	return Settings{
		Sim:      "sand",
		Scale:    4,
		TPS:      60,
		Sound:    false,
		Volume:   -1,
		LogLevel: "info",
	}
}

// Load resolves settings from the given sources.
func Load(src Sources) (Settings, error) {
	if src.EnvFile != "" {
		if err := godotenv.Load(src.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", src.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault(KeySim, def.Sim)
	v.SetDefault(KeyScale, def.Scale)
	v.SetDefault(KeyTPS, def.TPS)
	v.SetDefault(KeySound, def.Sound)
	v.SetDefault(KeyVolume, def.Volume)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, def.LogFile)

	if src.File != "" {
		v.SetConfigFile(src.File)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", src.File, err)
		}
	}

	for key, value := range src.Overrides {
		v.Set(strings.ToLower(strings.TrimSpace(key)), value)
	}

	out := Settings{
		Sim:      v.GetString(KeySim),
		Scale:    v.GetInt(KeyScale),
		TPS:      v.GetInt(KeyTPS),
		Sound:    v.GetBool(KeySound),
		Volume:   v.GetFloat64(KeyVolume),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Params:   make(map[string]string),
	}
	if out.Scale <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive, got %d", KeyScale, out.Scale)
	}
	if out.TPS <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive, got %d", KeyTPS, out.TPS)
	}

	for _, key := range sand.ConfigKeys() {
		if !v.IsSet(key) {
			continue
		}
		out.Params[key] = v.GetString(key)
	}
	return out, nil
}

// ParseOverrides splits key=value pairs. Keys are lower-cased.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[strings.ToLower(strings.TrimSpace(parts[0]))] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

// KVList collects repeated key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// SimConfig converts the simulation options into a sand.Config.
func (s Settings) SimConfig() sand.Config {
	return sand.FromMap(s.Params)
}

// Seed returns the configured seed, or the default one.
func (s Settings) Seed() int64 {
	if v, ok := s.Params[sand.KeySeed]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return sand.DefaultConfig().Seed
}
