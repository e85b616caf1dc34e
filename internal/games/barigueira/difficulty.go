package barigueira

import (
	"github.com/vovakirdan/barigueira/internal/config"
)

// Difficulty is one of the three fixed session levels.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists all levels in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Preset returns the config preset that holds this level's tuning.
func (d Difficulty) Preset() config.DifficultyPreset {
	switch d {
	case Medium:
		return config.DifficultyMedium
	case Hard:
		return config.DifficultyHard
	default:
		return config.DifficultyEasy
	}
}

// String returns the preset name ("easy", "medium", "hard").
func (d Difficulty) String() string {
	return string(d.Preset())
}

// Label returns the on-screen button label.
func (d Difficulty) Label() string {
	switch d {
	case Medium:
		return "MÉDIO"
	case Hard:
		return "DIFÍCIL"
	default:
		return "FÁCIL"
	}
}

// ParseDifficulty converts a user-supplied name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	p, err := config.ParsePreset(name)
	if err != nil {
		return Easy, err
	}
	switch p {
	case config.DifficultyMedium:
		return Medium, nil
	case config.DifficultyHard:
		return Hard, nil
	default:
		return Easy, nil
	}
}
