package sand

import "sand-ca/internal/core"

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
	core.Register("sand-terrain", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if c.Terrain == 0 {
			c.Terrain = 0.3
		}
		sim := NewWithConfig(c)
		sim.name = "sand-terrain"
		return sim
	})
}
