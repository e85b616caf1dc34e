package config

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ErrUnknownDifficulty is returned for preset names outside Presets.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParsePreset converts a user-supplied name to a preset.
// "normal" is accepted as an alias of medium.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "facil", "fácil":
		return DifficultyEasy, nil
	case "medium", "normal", "medio", "médio":
		return DifficultyMedium, nil
	case "hard", "dificil", "difícil":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: %w %q (expected easy, medium or hard)", ErrUnknownDifficulty, name)
	}
}

// For returns the tuning of the given preset.
func (t DifficultyTable) For(p DifficultyPreset) (Tuning, error) {
	switch p {
	case DifficultyEasy:
		return t.Easy, nil
	case DifficultyMedium:
		return t.Medium, nil
	case DifficultyHard:
		return t.Hard, nil
	default:
		return Tuning{}, fmt.Errorf("config: %w %q", ErrUnknownDifficulty, string(p))
	}
}

// Validate checks that a tuning describes a playable session.
func (t Tuning) Validate() error {
	switch {
	case t.Slots <= 0:
		return fmt.Errorf("slots must be positive, got %d", t.Slots)
	case t.MaxVisible <= 0:
		return fmt.Errorf("max_visible must be positive, got %d", t.MaxVisible)
	case t.IntervalMin <= 0:
		return fmt.Errorf("interval_min must be positive, got %g", t.IntervalMin)
	case t.IntervalMax < t.IntervalMin:
		return fmt.Errorf("interval_max %g is below interval_min %g", t.IntervalMax, t.IntervalMin)
	case t.VisibleMin <= 0:
		return fmt.Errorf("visible_min must be positive, got %g", t.VisibleMin)
	case t.VisibleMax < t.VisibleMin:
		return fmt.Errorf("visible_max %g is below visible_min %g", t.VisibleMax, t.VisibleMin)
	case t.PestChance < 0 || t.PestChance > 100:
		return fmt.Errorf("pest_chance must be within [0,100], got %d", t.PestChance)
	case t.GoldenChance != 0 && (t.GoldenChance < t.PestChance || t.GoldenChance > 100):
		return fmt.Errorf("golden_chance must be within [pest_chance,100], got %d", t.GoldenChance)
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	s := c.Session
	switch {
	case s.Duration <= 0:
		return fmt.Errorf("config: session duration must be positive, got %g", s.Duration)
	case s.Countdown < 0:
		return fmt.Errorf("config: countdown must not be negative, got %g", s.Countdown)
	case s.StunDuration <= 0:
		return fmt.Errorf("config: stun_duration must be positive, got %g", s.StunDuration)
	case s.RainDuration <= 0:
		return fmt.Errorf("config: rain_duration must be positive, got %g", s.RainDuration)
	}

	for _, p := range Presets {
		tuning, err := c.Difficulties.For(p)
		if err != nil {
			return err
		}
		if err := tuning.Validate(); err != nil {
			return fmt.Errorf("config: difficulty %s: %w", p, err)
		}
	}
	return nil
}
