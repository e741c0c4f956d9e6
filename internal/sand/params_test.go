package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sand-ca/internal/core"
)

func TestParameters(t *testing.T) {
	s := newTestSim(t, 40, 30)
	snap := s.Parameters()

	w, ok := snap.Lookup(KeyWidth)
	require.True(t, ok)
	assert.Equal(t, "40", w.Value)

	name, ok := snap.Lookup("material_name")
	require.True(t, ok)
	assert.Equal(t, "sand", name.Value)

	mode, ok := snap.Lookup(KeyDestroyMode)
	require.True(t, ok)
	assert.Equal(t, "relocate", mode.Value)
	assert.Equal(t, core.ParamTypeString, mode.Type)
}

func TestParameterControls(t *testing.T) {
	s := newTestSim(t, 10, 10)
	controls := s.ParameterControls()
	require.Len(t, controls, 3)

	for _, c := range controls {
		_, ok := s.Parameters().Lookup(c.Key)
		assert.True(t, ok, "control %s missing from snapshot", c.Key)
	}

	assert.True(t, s.SetIntParameter("material", int(Acid)))
	assert.Equal(t, Acid, s.SelectedMaterial())
	assert.False(t, s.SetIntParameter("material", int(Acid)), "unchanged value")
	assert.False(t, s.SetIntParameter("material", 42))
	assert.True(t, s.SetIntParameter("brush", int(BrushLarge)))
	assert.Equal(t, BrushLarge, s.SelectedBrush())
	assert.False(t, s.SetIntParameter("brush", 7))
	assert.False(t, s.SetIntParameter("unknown", 1))

	assert.True(t, s.SetFloatParameter("brush_skip", 0.5))
	p, _ := s.Parameters().Lookup("brush_skip")
	assert.Equal(t, "0.5", p.Value)
	assert.True(t, s.SetFloatParameter("brush_skip", 3))
	assert.Equal(t, 1.0, s.Config().BrushSkipChance)
	assert.False(t, s.SetFloatParameter("other", 1))
}

func TestSwatches(t *testing.T) {
	s := newTestSim(t, 10, 10)
	swatches := s.Swatches()
	require.Len(t, swatches, s.Table().Len())
	assert.Equal(t, "void", swatches[0].Label)
	assert.Zero(t, swatches[0].Color)
	assert.Equal(t, '3', swatches[Water].Key)
	assert.Equal(t, uint8(255), swatches[Water].Color.A)

	var _ core.SwatchProvider = s
}
