package sand

import (
	"fmt"
	"strconv"
	"strings"
)

// DestroyMode selects how a destroying material resolves a displacement.
type DestroyMode uint8

const (
	// DestroyRelocate moves the destroyer into the target cell and empties
	// its source cell.
	DestroyRelocate DestroyMode = iota
	// DestroyAnnihilate empties both cells.
	DestroyAnnihilate
)

func (m DestroyMode) String() string {
	switch m {
	case DestroyRelocate:
		return "relocate"
	case DestroyAnnihilate:
		return "annihilate"
	default:
		return fmt.Sprintf("destroy_mode(%d)", uint8(m))
	}
}

// ParseDestroyMode parses "relocate" or "annihilate".
func ParseDestroyMode(s string) (DestroyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relocate":
		return DestroyRelocate, nil
	case "annihilate":
		return DestroyAnnihilate, nil
	default:
		return 0, fmt.Errorf("unknown destroy mode %q", s)
	}
}

// Config controls the grid dimensions and the tunable rules of a simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// ChunkSize is the chunk edge length; zero disables chunk skipping.
	ChunkSize int

	BrushSkipChance float64
	Shades          int
	ShadeJitter     float64

	DestroyMode DestroyMode
	LiquidRise  bool

	// Terrain is the fraction of the grid height covered by generated stone
	// hills on Reset; zero leaves the grid empty.
	Terrain      float64
	TerrainScale float64
}

// Option keys understood by FromMap.
const (
	KeyWidth        = "w"
	KeyHeight       = "h"
	KeySeed         = "seed"
	KeyChunk        = "chunk"
	KeyBrushSkip    = "brush_skip"
	KeyShades       = "shades"
	KeyShadeJitter  = "shade_jitter"
	KeyDestroyMode  = "destroy_mode"
	KeyLiquidRise   = "liquid_rise"
	KeyTerrain      = "terrain"
	KeyTerrainScale = "terrain_scale"
)

// ConfigKeys lists every key FromMap reads.
func ConfigKeys() []string {
	return []string{
		KeyWidth, KeyHeight, KeySeed, KeyChunk, KeyBrushSkip, KeyShades, KeyShadeJitter,
		KeyDestroyMode, KeyLiquidRise, KeyTerrain, KeyTerrainScale,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           160,
		Height:          110,
		Seed:            1337,
		ChunkSize:       10,
		BrushSkipChance: 0.2,
		Shades:          8,
		ShadeJitter:     4,
		DestroyMode:     DestroyRelocate,
		LiquidRise:      true,
		Terrain:         0,
		TerrainScale:    48,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg[KeyWidth]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg[KeyHeight]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg[KeySeed]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg[KeyChunk]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg[KeyBrushSkip]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.BrushSkipChance = parsed
		}
	}
	if v, ok := cfg[KeyShades]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Shades = parsed
		}
	}
	if v, ok := cfg[KeyShadeJitter]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ShadeJitter = parsed
		}
	}
	if v, ok := cfg[KeyDestroyMode]; ok {
		if parsed, err := ParseDestroyMode(v); err == nil {
			c.DestroyMode = parsed
		}
	}
	if v, ok := cfg[KeyLiquidRise]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.LiquidRise = parsed
		}
	}
	if v, ok := cfg[KeyTerrain]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg[KeyTerrainScale]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TerrainScale = parsed
		}
	}
	return c
}
