package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player owns the speaker and mixes the hiss with one-shot clicks.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hiss        *Hiss
	volume      float64
	initialized bool
}

// NewPlayer returns a player that has not yet opened the audio device.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		hiss:   NewHiss(time.Now().UnixNano(), 0.0005),
		volume: volume,
	}
}

// Hiss exposes the activity noise so callers can drive its level.
func (p *Player) Hiss() *Hiss { return p.hiss }

// Start opens the speaker and begins streaming the hiss.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.mixer.Add(volume(p.hiss, p.volume))
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Click queues a placement click.
func (p *Player) Click(density int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(Click(SampleRate, density, p.volume*0.5))
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetActivity drives the hiss from the moves of the latest frame.
func (p *Player) SetActivity(moves, cells int) { p.hiss.SetActivity(moves, cells) }
