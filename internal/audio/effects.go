// Package audio synthesises the game's sound effects with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/barigueira/internal/core"
)

// Sound identifies a synthesised effect.
type Sound int

const (
	SoundNone   Sound = iota
	SoundHit          // Normal capybara whacked
	SoundGolden       // Golden capybara whacked
	SoundPest         // Pest whacked
	SoundStart        // Countdown finished
	SoundEnd          // Session over
)

const sampleRate = beep.SampleRate(44100)

// SoundFor maps a game event to its one-shot effect.
func SoundFor(e core.Event) Sound {
	switch e.Type {
	case core.EventHit:
		switch e.Kind {
		case "golden":
			return SoundGolden
		case "pest":
			return SoundPest
		default:
			return SoundHit
		}
	case core.EventCountdownDone:
		return SoundStart
	case core.EventSessionEnd:
		return SoundEnd
	}
	return SoundNone
}

// tone is a shaped sine note.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return fade(beep.Take(rate.N(d), sine), rate.N(d))
}

// buzz is a low square-ish note.
func buzz(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	phase := 0.0
	pos := 0
	return fade(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			v := -1.0
			if phase < 0.5 {
				v = 1.0
			}
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	}), total)
}

// noise is endless white noise used for the rain loop.
func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// fade applies a linear release over the last quarter of total samples.
func fade(s beep.Streamer, total int) beep.Streamer {
	release := total / 4
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			left := total - pos
			if release > 0 && left < release {
				g := float64(left) / float64(release)
				samples[i][0] *= g
				samples[i][1] *= g
			}
			pos++
		}
		return n, ok
	})
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Effect builds the streamer for a one-shot sound at the given volume (0..1).
// It returns nil for SoundNone.
func Effect(s Sound, rate beep.SampleRate, v float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundHit:
		st = tone(rate, 660, 80*time.Millisecond)
	case SoundGolden:
		st = beep.Seq(
			tone(rate, 987.77, 70*time.Millisecond),
			tone(rate, 1318.51, 140*time.Millisecond),
		)
	case SoundPest:
		st = buzz(rate, 110, 180*time.Millisecond)
	case SoundStart:
		st = tone(rate, 880, 200*time.Millisecond)
	case SoundEnd:
		st = beep.Seq(
			tone(rate, 523.25, 120*time.Millisecond),
			tone(rate, 392, 120*time.Millisecond),
			tone(rate, 261.63, 240*time.Millisecond),
		)
	default:
		return nil
	}
	return volume(st, v)
}

// Rain builds the endless rain loop at the given volume.
func Rain(v float64) beep.Streamer {
	return volume(noise(), v*0.3)
}
