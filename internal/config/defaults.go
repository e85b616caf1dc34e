package config

import (
	_ "embed"
)

//go:embed defaults/barigueira.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/barigueira.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			Duration:     120,
			Countdown:    3.99,
			StunDuration: 0.5,
			RainDuration: 5,
		},
		Difficulties: DifficultyTable{
			Easy: Tuning{
				Slots:       3,
				MaxVisible:  1,
				IntervalMin: 1.5,
				IntervalMax: 3.0,
				VisibleMin:  1.0,
				VisibleMax:  1.8,
				PestPenalty: -1,
				PestChance:  10,
			},
			Medium: Tuning{
				Slots:        4,
				MaxVisible:   2,
				IntervalMin:  1.0,
				IntervalMax:  2.0,
				VisibleMin:   0.8,
				VisibleMax:   1.5,
				PestPenalty:  -2,
				PestChance:   15,
				GoldenChance: 18,
			},
			Hard: Tuning{
				Slots:        5,
				MaxVisible:   3,
				IntervalMin:  1.0,
				IntervalMax:  1.5,
				VisibleMin:   0.5,
				VisibleMax:   0.8,
				PestPenalty:  -3,
				PestChance:   20,
				GoldenChance: 25,
				RainOnPest:   true,
			},
		},
		Layout: LayoutConfig{
			Terminal: Metrics{
				SlotWidth:        12,
				SlotHeight:       5,
				SlotGap:          3,
				SlotOffsetY:      2,
				ButtonWidth:      22,
				ButtonHeight:     3,
				ButtonGap:        0,
				ButtonTop:        7,
				PauseWidth:       11,
				PauseHeight:      3,
				PauseTop:         0,
				EndButtonWidth:   16,
				EndButtonOffsetY: 2,
				EndButtonGap:     1,
				BottomMargin:     4,
			},
			Window: Metrics{
				ScreenWidth:      1500,
				ScreenHeight:     800,
				SlotWidth:        150,
				SlotHeight:       120,
				SlotGap:          50,
				SlotOffsetY:      120,
				ButtonWidth:      300,
				ButtonHeight:     60,
				ButtonGap:        25,
				ButtonTop:        300,
				PauseWidth:       120,
				PauseHeight:      40,
				PauseTop:         20,
				EndButtonWidth:   250,
				EndButtonOffsetY: 50,
				EndButtonGap:     10,
				BottomMargin:     100,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `barigueira config`.
func DefaultYAML() []byte {
	return defaultYAML
}
