package barigueira

import "github.com/vovakirdan/barigueira/internal/core"

// Kind is the sprite variant occupying a slot during one appearance.
type Kind int

const (
	KindNormal Kind = iota // Capybara, +1
	KindGolden             // Golden capybara, +2
	KindPest               // Cutia, difficulty penalty
)

// String returns the kind name used in events and logs.
func (k Kind) String() string {
	switch k {
	case KindGolden:
		return "golden"
	case KindPest:
		return "pest"
	default:
		return "normal"
	}
}

// Slot is one fixed position that can host a sprite appearance.
// Stunned supersedes Visible: a hit slot keeps Visible set until the
// stun ends and is drawn and handled as stunned.
type Slot struct {
	Rect core.Rect // Fixed at session start

	Visible        bool
	ElapsedVisible float64
	TotalVisible   float64
	Hit            bool

	Stunned        bool
	ElapsedStunned float64

	Kind Kind
}

// Empty reports whether the slot shows nothing.
func (s Slot) Empty() bool {
	return !s.Visible && !s.Stunned
}

// Active reports whether the slot shows a clickable sprite.
func (s Slot) Active() bool {
	return s.Visible && !s.Stunned
}

// reset returns the slot to the empty Normal state, keeping its geometry.
func (s *Slot) reset() {
	*s = Slot{Rect: s.Rect}
}
