package barigueira

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
)

// Session is one timed play-through: the slot table plus the counters
// advanced by Update. It is owned by a single frame loop.
type Session struct {
	timers  config.SessionConfig
	table   config.DifficultyTable
	layout  Layout
	newRand RandFactory

	difficulty Difficulty
	tuning     config.Tuning
	rng        RandSource
	slots      []Slot

	score     int
	countdown float64
	remaining float64
	started   bool
	ended     bool
	raining   bool
	rainLeft  float64
}

// NewSession creates an idle session. Start must be called before Update.
func NewSession(cfg config.Config, layout Layout) *Session {
	return &Session{
		timers:  cfg.Session,
		table:   cfg.Difficulties,
		layout:  layout,
		newRand: NewRand,
	}
}

// SetRandFactory replaces the random source constructor used by Start.
func (s *Session) SetRandFactory(f RandFactory) {
	if f != nil {
		s.newRand = f
	}
}

// SetLayout changes the layout used by the next Start.
// Slots of a running session keep their geometry.
func (s *Session) SetLayout(l Layout) {
	s.layout = l
}

// Start begins a new session at difficulty d, discarding any previous one.
// The slot table is reallocated to exactly the difficulty's slot count.
func (s *Session) Start(d Difficulty, seed int64) error {
	tuning, err := s.table.For(d.Preset())
	if err != nil {
		return err
	}
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("barigueira: cannot set up %s slots: %w", d, err)
	}

	rects := s.layout.Slots(tuning.Slots)
	slots := make([]Slot, len(rects))
	for i, r := range rects {
		slots[i] = Slot{Rect: r}
	}

	s.difficulty = d
	s.tuning = tuning
	s.rng = s.newRand(seed)
	s.slots = slots
	s.score = 0
	s.countdown = s.timers.Countdown
	s.remaining = s.timers.Duration
	s.started = false
	s.ended = false
	s.raining = false
	s.rainLeft = 0
	return nil
}

// Release drops the slot table. The session is inactive until the next Start.
func (s *Session) Release() {
	s.slots = nil
	s.rng = nil
	s.started = false
	s.ended = false
	s.raining = false
}

// Active reports whether a session has been started and not released.
func (s *Session) Active() bool {
	return s.slots != nil
}

// Update advances the session by dt seconds. The pointer carries the
// primary-button press edge for this frame.
func (s *Session) Update(dt float64, p core.Pointer) []core.Event {
	if !s.Active() || s.ended {
		return nil
	}

	if !s.started {
		s.countdown -= dt
		if s.countdown <= 0 {
			s.started = true
			return []core.Event{s.event(core.EventCountdownDone, -1)}
		}
		return nil
	}

	var events []core.Event

	s.remaining -= dt
	if s.remaining <= 0 {
		s.remaining = 0
		s.ended = true
		return append(events, s.event(core.EventSessionEnd, -1))
	}

	if s.raining {
		s.rainLeft -= dt
		if s.rainLeft <= 0 {
			s.rainLeft = 0
			s.raining = false
			events = append(events, s.event(core.EventRainStop, -1))
		}
	}

	visible := 0
	for _, slot := range s.slots {
		if slot.Active() {
			visible++
		}
	}

	for i := range s.slots {
		slot := &s.slots[i]

		if slot.Stunned {
			slot.ElapsedStunned += dt
			if slot.ElapsedStunned >= s.timers.StunDuration {
				slot.reset()
			}
			continue
		}

		if slot.Visible {
			slot.ElapsedVisible += dt
			if slot.ElapsedVisible >= slot.TotalVisible {
				slot.Visible = false
				slot.Kind = KindNormal
			}
		} else if visible < s.tuning.MaxVisible && !s.raining {
			if s.rng.IntRange(0, 1000) < int(dt*1000/s.tuning.IntervalMin) {
				s.spawn(slot)
				events = append(events, s.slotEvent(core.EventSpawn, i, slot.Kind, 0))
			}
		}

		if slot.Visible && !slot.Hit && p.Inside(slot.Rect) {
			events = append(events, s.hit(i)...)
		}
	}

	return events
}

// spawn shows a new sprite in an empty slot.
func (s *Session) spawn(slot *Slot) {
	slot.Kind = drawKind(s.tuning, s.rng.IntRange(1, 100))
	slot.Visible = true
	slot.Hit = false
	slot.ElapsedVisible = 0
	lo := int(math.Round(s.tuning.VisibleMin * 1000))
	hi := int(math.Round(s.tuning.VisibleMax * 1000))
	slot.TotalVisible = float64(s.rng.IntRange(lo, hi)) / 1000
}

// drawKind maps a chance in [1,100] to a sprite kind.
func drawKind(t config.Tuning, chance int) Kind {
	switch {
	case chance <= t.PestChance:
		return KindPest
	case t.GoldenChance > 0 && chance <= t.GoldenChance:
		return KindGolden
	}
	return KindNormal
}

// hit stuns slot i and applies the scoring rule for its kind.
func (s *Session) hit(i int) []core.Event {
	slot := &s.slots[i]
	slot.Hit = true
	slot.Stunned = true
	slot.ElapsedStunned = 0

	before := s.score
	switch slot.Kind {
	case KindNormal:
		s.score++
	case KindGolden:
		s.score += 2
	case KindPest:
		s.score += s.tuning.PestPenalty
		if s.score < 0 {
			s.score = 0
		}
	}

	events := []core.Event{s.slotEvent(core.EventHit, i, slot.Kind, s.score-before)}

	if slot.Kind == KindPest && s.tuning.RainOnPest {
		s.raining = true
		s.rainLeft = s.timers.RainDuration
		events = append(events, s.event(core.EventRainStart, -1))
	}
	return events
}

func (s *Session) event(t core.EventType, slot int) core.Event {
	return core.Event{Type: t, Slot: slot, Score: s.score}
}

func (s *Session) slotEvent(t core.EventType, slot int, k Kind, delta int) core.Event {
	return core.Event{Type: t, Slot: slot, Kind: k.String(), Delta: delta, Score: s.score}
}

// Difficulty returns the difficulty of the current session.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Tuning returns the tuning of the current session.
func (s *Session) Tuning() config.Tuning { return s.tuning }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Remaining returns the remaining session time in seconds.
func (s *Session) Remaining() float64 { return s.remaining }

// Countdown returns the remaining start countdown in seconds.
func (s *Session) Countdown() float64 { return s.countdown }

// Started reports whether the start countdown has elapsed.
func (s *Session) Started() bool { return s.started }

// Ended reports whether the session time ran out.
func (s *Session) Ended() bool { return s.ended }

// Raining reports whether rain is suppressing spawns.
func (s *Session) Raining() bool { return s.raining }

// RainLeft returns the remaining rain time in seconds.
func (s *Session) RainLeft() float64 { return s.rainLeft }

// Slots returns a copy of the slot table.
func (s *Session) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// CountdownLabel returns the text shown before the session starts:
// "3", "2", "1" and then "GO!". It is empty once started.
func (s *Session) CountdownLabel() string {
	switch {
	case s.started || !s.Active():
		return ""
	case s.countdown > 1:
		return strconv.Itoa(int(s.countdown))
	case s.countdown > 0:
		return "GO!"
	}
	return ""
}

// Clock formats the remaining time as MM:SS.
func (s *Session) Clock() string {
	secs := int(s.remaining)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
