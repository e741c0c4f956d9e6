package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHissFollowsLevel(t *testing.T) {
	h := NewHiss(1, 1)
	samples := make([][2]float64, 256)

	n, ok := h.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 256, n)
	for _, s := range samples {
		assert.Zero(t, s[0], "silent until a level is set")
	}

	h.SetActivity(50, 1000)
	assert.InDelta(t, 0.5, h.Level(), 1e-9)
	h.Stream(samples)
	loud := false
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		if s[0] != 0 {
			loud = true
		}
	}
	assert.True(t, loud)
	assert.NoError(t, h.Err())
}

func TestHissClampsLevel(t *testing.T) {
	h := NewHiss(1, 0)
	h.SetLevel(4)
	assert.Equal(t, 1.0, h.Level())
	h.SetLevel(-1)
	assert.Zero(t, h.Level())
	h.SetActivity(10, 0)
	assert.Zero(t, h.Level())
}

func TestClickEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := Click(rate, 4, 1)
	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, v := range buf[:n] {
			assert.LessOrEqual(t, v[0], 1.0)
		}
		if !ok {
			break
		}
		require.Less(t, total, rate.N(1e9), "click never ended")
	}
	assert.Equal(t, rate.N(40e6), total)
}

func TestClickPitchFallsWithDensity(t *testing.T) {
	light := newTone(1200/(1+0.0/3), 0, SampleRate)
	heavy := newTone(1200/(1+9.0/3), 0, SampleRate)
	assert.Greater(t, light.freq, heavy.freq)
}

func TestPlayerIgnoresClicksBeforeStart(t *testing.T) {
	p := NewPlayer(0.5)
	p.Click(4)
	p.Close()
	assert.NotNil(t, p.Hiss())
}
