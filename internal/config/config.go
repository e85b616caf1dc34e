// Package config provides YAML/TOML game configuration loading and the
// per-difficulty tuning tables for Barigueira Attack.
package config

// Config contains all configuration for the game.
type Config struct {
	Session      SessionConfig   `yaml:"session" toml:"session"`
	Difficulties DifficultyTable `yaml:"difficulties" toml:"difficulties"`
	Layout       LayoutConfig    `yaml:"layout" toml:"layout"`
}

// SessionConfig defines the timers shared by every difficulty. All values are seconds.
type SessionConfig struct {
	Duration     float64 `yaml:"duration" toml:"duration"`           // Play time per session
	Countdown    float64 `yaml:"countdown" toml:"countdown"`         // Pre-start countdown ("3", "2", "1", "GO!")
	StunDuration float64 `yaml:"stun_duration" toml:"stun_duration"` // Post-hit cooldown per slot
	RainDuration float64 `yaml:"rain_duration" toml:"rain_duration"` // Rain length after a pest hit
}

// DifficultyTable holds the tuning for each difficulty preset.
type DifficultyTable struct {
	Easy   Tuning `yaml:"easy" toml:"easy"`
	Medium Tuning `yaml:"medium" toml:"medium"`
	Hard   Tuning `yaml:"hard" toml:"hard"`
}

// Tuning defines the spawn and scoring parameters of one difficulty.
type Tuning struct {
	Slots       int     `yaml:"slots" toml:"slots"`               // Number of slots on screen
	MaxVisible  int     `yaml:"max_visible" toml:"max_visible"`   // Max simultaneously visible sprites
	IntervalMin float64 `yaml:"interval_min" toml:"interval_min"` // Spawn interval lower bound (s)
	IntervalMax float64 `yaml:"interval_max" toml:"interval_max"` // Spawn interval upper bound (s)
	VisibleMin  float64 `yaml:"visible_min" toml:"visible_min"`   // Visible duration lower bound (s)
	VisibleMax  float64 `yaml:"visible_max" toml:"visible_max"`   // Visible duration upper bound (s)
	PestPenalty int     `yaml:"pest_penalty" toml:"pest_penalty"` // Score change for hitting a pest (negative)

	// Kind draw: chance in [1,100]; chance <= PestChance is a pest,
	// chance <= GoldenChance is golden. GoldenChance 0 disables golden sprites.
	PestChance   int  `yaml:"pest_chance" toml:"pest_chance"`
	GoldenChance int  `yaml:"golden_chance" toml:"golden_chance"`
	RainOnPest   bool `yaml:"rain_on_pest" toml:"rain_on_pest"`
}

// LayoutConfig holds screen metrics for each frontend.
type LayoutConfig struct {
	Terminal Metrics `yaml:"terminal" toml:"terminal"` // Units are character cells
	Window   Metrics `yaml:"window" toml:"window"`     // Units are pixels
}

// Metrics defines sizes and offsets used to place slots and buttons.
type Metrics struct {
	ScreenWidth  int `yaml:"screen_width" toml:"screen_width"`   // Preferred screen width (window only)
	ScreenHeight int `yaml:"screen_height" toml:"screen_height"` // Preferred screen height (window only)

	SlotWidth   int `yaml:"slot_width" toml:"slot_width"`
	SlotHeight  int `yaml:"slot_height" toml:"slot_height"`
	SlotGap     int `yaml:"slot_gap" toml:"slot_gap"`
	SlotOffsetY int `yaml:"slot_offset_y" toml:"slot_offset_y"` // Slot row top, relative to screen middle

	ButtonWidth  int `yaml:"button_width" toml:"button_width"`
	ButtonHeight int `yaml:"button_height" toml:"button_height"`
	ButtonGap    int `yaml:"button_gap" toml:"button_gap"`
	ButtonTop    int `yaml:"button_top" toml:"button_top"` // Top of the first menu button

	PauseWidth  int `yaml:"pause_width" toml:"pause_width"`
	PauseHeight int `yaml:"pause_height" toml:"pause_height"`
	PauseTop    int `yaml:"pause_top" toml:"pause_top"`

	EndButtonWidth   int `yaml:"end_button_width" toml:"end_button_width"`
	EndButtonOffsetY int `yaml:"end_button_offset_y" toml:"end_button_offset_y"` // Relative to screen middle
	EndButtonGap     int `yaml:"end_button_gap" toml:"end_button_gap"`           // Distance of each end button from the centre line
	BottomMargin     int `yaml:"bottom_margin" toml:"bottom_margin"`             // Credits back button distance from bottom
}
