package sand

import (
	"sand-ca/internal/core"
)

const (
	paramMaterial  = "material"
	paramBrush     = "brush"
	paramBrushSkip = "brush_skip"
)

func (s *Simulation) Parameters() core.ParameterSnapshot {
	selected, _ := s.table.Lookup(s.material)
	brush, _ := s.brushes.Get(s.brush)
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam(KeyWidth, "Width", s.grid.W),
				core.IntParam(KeyHeight, "Height", s.grid.H),
				core.Int64Param(KeySeed, "Seed", s.cfg.Seed),
				core.IntParam(KeyChunk, "Chunk size", s.cfg.ChunkSize),
			},
		},
		{
			Name: "Painting",
			Params: []core.Parameter{
				core.IntParam(paramMaterial, "Material", int(s.material)),
				core.StringParam("material_name", "Material name", selected.Name),
				core.IntParam(paramBrush, "Brush", int(s.brush)),
				core.StringParam("brush_name", "Brush name", brush.Name),
				core.FloatParam(paramBrushSkip, "Brush skip chance", s.cfg.BrushSkipChance),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam(KeyDestroyMode, "Destroy mode", s.cfg.DestroyMode.String()),
				core.BoolParam(KeyLiquidRise, "Destroying liquids rise", s.cfg.LiquidRise),
				core.BoolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name:    "Frame",
			Summary: "Counters of the most recent frame",
			Params: []core.Parameter{
				core.Int64Param("frame", "Frame", int64(s.frame)),
				core.IntParam("occupied", "Occupied cells", s.CountOccupied()),
				core.IntParam("active", "Active cells", s.CountActive()),
				core.IntParam("moves", "Moves", s.last.Moves),
				core.IntParam("destroys", "Destroys", s.last.Destroys),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    paramMaterial,
			Label:  "Material",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    1,
			Max:    float64(s.table.Len() - 1),
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    paramBrush,
			Label:  "Brush",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    float64(s.brushes.Len() - 1),
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    paramBrushSkip,
			Label:  "Brush skip",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case paramMaterial:
		if value < 0 || value > 255 || !s.table.Valid(MaterialID(value)) {
			return false
		}
		if MaterialID(value) == s.material {
			return false
		}
		s.SelectMaterial(MaterialID(value))
		return true
	case paramBrush:
		if value < 0 || value >= s.brushes.Len() || BrushID(value) == s.brush {
			return false
		}
		s.SelectBrush(BrushID(value))
		return true
	default:
		return false
	}
}

func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	switch key {
	case paramBrushSkip:
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		if value == s.cfg.BrushSkipChance {
			return false
		}
		s.cfg.BrushSkipChance = value
		return true
	default:
		return false
	}
}

// Swatches lists every material with its base colour for legends.
func (s *Simulation) Swatches() []core.Swatch {
	all := s.table.All()
	out := make([]core.Swatch, 0, len(all))
	for _, m := range all {
		out = append(out, core.Swatch{ID: int(m.ID), Label: m.Name, Key: m.Key, Color: BaseColor(m)})
	}
	return out
}
