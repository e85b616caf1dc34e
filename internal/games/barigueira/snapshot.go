package barigueira

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Screen     Screen
	Active     bool
	Difficulty Difficulty
	Score      int
	Countdown  float64
	Remaining  float64
	Started    bool
	Ended      bool
	Raining    bool
	RainLeft   float64
	Slots      []Slot
}

// Snapshot returns a value copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Active:     s.Active(),
		Difficulty: s.difficulty,
		Score:      s.score,
		Countdown:  s.countdown,
		Remaining:  s.remaining,
		Started:    s.started,
		Ended:      s.ended,
		Raining:    s.raining,
		RainLeft:   s.rainLeft,
		Slots:      s.Slots(),
	}
}

// Snapshot returns the session snapshot tagged with the current screen.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Screen = g.screen
	return snap
}
