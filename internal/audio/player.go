package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/barigueira/internal/core"
)

// Player mixes effects for game events. A Player that was never started
// keeps mixing into its own mixer without a speaker, which tests stream from.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rain    *beep.Ctrl
	volume  float64
	speaker bool
	held    bool
}

// NewPlayer creates a player with the given master volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Start opens the speaker and plays the mixer on it.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.speaker {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(beep.StreamerFunc(p.stream))
	p.speaker = true
	return nil
}

// Close silences everything and stops the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.rain = nil
	p.unlock()

	if p.speaker {
		speaker.Close()
		p.speaker = false
	}
}

func (p *Player) lock() {
	if p.speaker {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.speaker {
		speaker.Unlock()
	}
}

// Handle plays the sounds for one frame's events.
func (p *Player) Handle(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()

	for _, e := range events {
		switch e.Type {
		case core.EventRainStart:
			if p.rain == nil {
				p.rain = &beep.Ctrl{Streamer: Rain(p.volume), Paused: p.held}
				p.mixer.Add(p.rain)
			}
		case core.EventRainStop, core.EventSessionStart, core.EventSessionEnd, core.EventSessionRelease:
			p.stopRain()
		}
		if st := Effect(SoundFor(e), sampleRate, p.volume); st != nil {
			p.mixer.Add(st)
		}
	}
}

// Hold pauses or resumes looping sounds while the game is paused.
func (p *Player) Hold(held bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.held == held {
		return
	}
	p.held = held
	if p.rain != nil {
		p.lock()
		p.rain.Paused = held
		p.unlock()
	}
}

// Raining reports whether the rain loop is playing.
func (p *Player) Raining() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rain != nil && !p.rain.Paused
}

// Active returns the number of streamers in the mixer.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// stopRain must be called with the speaker locked.
func (p *Player) stopRain() {
	if p.rain == nil {
		return
	}
	p.rain.Streamer = nil
	p.rain = nil
}

// stream never drains, so the speaker keeps the player while it is idle.
func (p *Player) stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	p.mixer.Stream(samples)
	return len(samples), true
}

// Stream pulls samples from the mixer directly. Only meaningful when the
// speaker was never started.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stream(samples)
}

// Err implements beep.Streamer.
func (p *Player) Err() error { return nil }
