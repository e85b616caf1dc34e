package barigueira

import (
	"testing"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
)

// stubRand answers the three draws made by a session:
// the spawn roll [0,1000], the kind chance [1,100] and the visible duration.
type stubRand struct {
	spawn  bool // Spawn roll succeeds whenever the threshold is positive
	chance int  // Kind chance returned for every spawn
}

func (r *stubRand) IntRange(lo, hi int) int {
	switch {
	case lo == 0 && hi == 1000:
		if r.spawn {
			return 0
		}
		return hi
	case lo == 1 && hi == 100:
		return r.chance
	default:
		return lo
	}
}

func newTestSession(t *testing.T, d Difficulty, r RandSource) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	s := NewSession(cfg, NewLayout(cfg.Layout.Window, 1500, 800))
	s.SetRandFactory(func(int64) RandSource { return r })
	if err := s.Start(d, 1); err != nil {
		t.Fatalf("Start(%s) failed: %v", d, err)
	}
	return s
}

// skipCountdown runs the start countdown to completion.
func skipCountdown(t *testing.T, s *Session) {
	t.Helper()
	s.Update(4, core.Pointer{})
	if !s.Started() {
		t.Fatal("session should be started after the countdown")
	}
}

// show makes slot i visible with the given kind.
func show(s *Session, i int, k Kind) {
	s.slots[i].Visible = true
	s.slots[i].Kind = k
	s.slots[i].ElapsedVisible = 0
	s.slots[i].TotalVisible = 1
}

func pressOn(r core.Rect) core.Pointer {
	x, y := r.Center()
	return core.Pointer{X: x, Y: y, Pressed: true}
}

func countEvents(events []core.Event, t core.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestStartAllocatesSlots(t *testing.T) {
	tests := []struct {
		d     Difficulty
		slots int
	}{
		{Easy, 3},
		{Medium, 4},
		{Hard, 5},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			s := newTestSession(t, tc.d, &stubRand{})
			slots := s.Slots()
			if len(slots) != tc.slots {
				t.Fatalf("expected %d slots, got %d", tc.slots, len(slots))
			}
			for i, slot := range slots {
				if slot.Visible || slot.Stunned || slot.Kind != KindNormal {
					t.Errorf("slot %d should start empty and normal, got %+v", i, slot)
				}
			}
			if s.Score() != 0 || s.Remaining() != 120 || s.Countdown() != 3.99 {
				t.Errorf("unexpected counters: score=%d remaining=%g countdown=%g",
					s.Score(), s.Remaining(), s.Countdown())
			}
			if s.Started() || s.Ended() || s.Raining() {
				t.Error("new session should not be started, ended or raining")
			}
		})
	}
}

func TestStartLayout(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})
	slots := s.Slots()

	// 3*150 + 2*50 = 550 wide, centered in 1500
	want := core.NewRect(475, 520, 150, 120)
	if slots[0].Rect != want {
		t.Errorf("slot 0 rect = %+v, expected %+v", slots[0].Rect, want)
	}
	if slots[1].Rect.X != 675 || slots[2].Rect.X != 875 {
		t.Errorf("slots not evenly spaced: %d, %d", slots[1].Rect.X, slots[2].Rect.X)
	}
}

func TestStartInvalidTuning(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Difficulties.Medium.Slots = 0
	s := NewSession(cfg, NewLayout(cfg.Layout.Window, 1500, 800))

	if err := s.Start(Medium, 1); err == nil {
		t.Fatal("Start should fail when the slot count is not positive")
	}
	if s.Active() {
		t.Error("failed Start should leave the session inactive")
	}
}

func TestCountdown(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})

	labels := []string{"3"}
	for i := 0; i < 3; i++ {
		s.Update(1, core.Pointer{})
		labels = append(labels, s.CountdownLabel())
	}

	expected := []string{"3", "2", "1", "GO!"}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %d = %q, expected %q", i, labels[i], expected[i])
		}
	}

	if s.Started() {
		t.Fatal("session should not start before the countdown elapses")
	}
	if s.Remaining() != 120 {
		t.Errorf("remaining time should not run during the countdown, got %g", s.Remaining())
	}

	events := s.Update(1, core.Pointer{})
	if !s.Started() {
		t.Fatal("session should start once the countdown elapses")
	}
	if countEvents(events, core.EventCountdownDone) != 1 {
		t.Errorf("expected one countdown_done event, got %+v", events)
	}
	if s.CountdownLabel() != "" {
		t.Errorf("label after start = %q, expected empty", s.CountdownLabel())
	}
	if s.Remaining() != 120 {
		t.Errorf("the start frame should not consume session time, got %g", s.Remaining())
	}
}

func TestEasyHitNormal(t *testing.T) {
	r := &stubRand{spawn: true, chance: 100}
	s := newTestSession(t, Easy, r)
	skipCountdown(t, s)

	events := s.Update(0.1, core.Pointer{})
	if countEvents(events, core.EventSpawn) != 3 {
		t.Fatalf("expected every empty slot to spawn on Easy, got %+v", events)
	}
	slot := s.Slots()[0]
	if !slot.Visible || slot.Kind != KindNormal || slot.TotalVisible != 1.0 {
		t.Fatalf("slot 0 should show a normal capybara for 1s, got %+v", slot)
	}

	r.spawn = false
	events = s.Update(0.1, pressOn(slot.Rect))

	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}
	slot = s.Slots()[0]
	if !slot.Stunned || !slot.Hit {
		t.Errorf("slot should be stunned and hit, got %+v", slot)
	}
	if countEvents(events, core.EventHit) != 1 || events[0].Delta != 1 || events[0].Kind != "normal" {
		t.Errorf("expected a normal hit event with delta 1, got %+v", events)
	}
}

func TestScoringByKind(t *testing.T) {
	tests := []struct {
		name     string
		d        Difficulty
		kind     Kind
		start    int
		expected int
		rain     bool
	}{
		{"normal", Medium, KindNormal, 4, 5, false},
		{"golden", Medium, KindGolden, 4, 6, false},
		{"pest easy", Easy, KindPest, 4, 3, false},
		{"pest medium", Medium, KindPest, 4, 2, false},
		{"pest hard", Hard, KindPest, 4, 1, true},
		{"pest clamps at zero", Easy, KindPest, 0, 0, false},
		{"hard pest with score 1", Hard, KindPest, 1, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, tc.d, &stubRand{})
			skipCountdown(t, s)
			s.score = tc.start
			show(s, 0, tc.kind)

			s.Update(0.1, pressOn(s.slots[0].Rect))

			if s.Score() != tc.expected {
				t.Errorf("score = %d, expected %d", s.Score(), tc.expected)
			}
			if s.Raining() != tc.rain {
				t.Errorf("raining = %v, expected %v", s.Raining(), tc.rain)
			}
			if tc.rain && s.RainLeft() != 5.0 {
				t.Errorf("rain left = %g, expected 5", s.RainLeft())
			}
		})
	}
}

func TestStunLastsHalfSecond(t *testing.T) {
	for _, kind := range []Kind{KindNormal, KindGolden, KindPest} {
		t.Run(kind.String(), func(t *testing.T) {
			s := newTestSession(t, Medium, &stubRand{})
			skipCountdown(t, s)
			show(s, 1, kind)
			s.Update(0.125, pressOn(s.slots[1].Rect))

			for i := 0; i < 3; i++ {
				s.Update(0.125, core.Pointer{})
				if !s.Slots()[1].Stunned {
					t.Fatalf("slot released after %d stun frames", i+1)
				}
			}

			s.Update(0.125, core.Pointer{})
			slot := s.Slots()[1]
			if !slot.Empty() || slot.Hit || slot.Kind != KindNormal {
				t.Errorf("slot should be empty and normal after 0.5s, got %+v", slot)
			}
		})
	}
}

func TestStunnedSlotIgnoresClicks(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})
	skipCountdown(t, s)
	show(s, 0, KindNormal)

	s.Update(0.1, pressOn(s.slots[0].Rect))
	events := s.Update(0.1, pressOn(s.slots[0].Rect))

	if s.Score() != 1 {
		t.Errorf("second click on a stunned slot changed score to %d", s.Score())
	}
	if countEvents(events, core.EventHit) != 0 {
		t.Errorf("stunned slot should not report hits, got %+v", events)
	}
	if !s.Slots()[0].Visible {
		t.Error("stunned slot keeps its visible flag until the stun ends")
	}
}

func TestVisibleExpires(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})
	skipCountdown(t, s)
	show(s, 2, KindPest)

	s.Update(0.5, core.Pointer{})
	if !s.Slots()[2].Visible {
		t.Fatal("slot hid before its visible duration")
	}

	s.Update(0.5, core.Pointer{})
	slot := s.Slots()[2]
	if slot.Visible || slot.Kind != KindNormal {
		t.Errorf("slot should be hidden and normal after 1s, got %+v", slot)
	}
}

func TestMaxVisibleCap(t *testing.T) {
	tests := []struct {
		d   Difficulty
		max int
	}{
		{Easy, 1},
		{Medium, 2},
		{Hard, 3},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			s := newTestSession(t, tc.d, &stubRand{spawn: true, chance: 100})
			skipCountdown(t, s)
			n := len(s.Slots())

			// Below the cap every empty slot may spawn in the same frame
			events := s.Update(0.1, core.Pointer{})
			if got := countEvents(events, core.EventSpawn); got != n {
				t.Fatalf("first frame spawned %d, expected %d", got, n)
			}

			// Hide all but max-1 sprites: the count stays below the cap
			for i := tc.max - 1; i < n; i++ {
				s.slots[i].reset()
			}
			events = s.Update(0.1, core.Pointer{})
			if got := countEvents(events, core.EventSpawn); got != n-tc.max+1 {
				t.Fatalf("below the cap spawned %d, expected %d", got, n-tc.max+1)
			}

			// With max sprites visible at frame start nothing spawns
			for i := tc.max; i < n; i++ {
				s.slots[i].reset()
			}
			events = s.Update(0.1, core.Pointer{})
			if got := countEvents(events, core.EventSpawn); got != 0 {
				t.Fatalf("at the cap spawned %d, expected none", got)
			}
		})
	}
}

func TestRainLastsFiveSeconds(t *testing.T) {
	r := &stubRand{}
	s := newTestSession(t, Hard, r)
	skipCountdown(t, s)
	show(s, 0, KindPest)

	events := s.Update(0.25, pressOn(s.slots[0].Rect))
	if countEvents(events, core.EventRainStart) != 1 {
		t.Fatalf("expected rain_start, got %+v", events)
	}

	r.spawn = true
	for i := 0; i < 19; i++ {
		events = s.Update(0.25, core.Pointer{})
		if !s.Raining() {
			t.Fatalf("rain stopped after %d frames", i+1)
		}
		if n := countEvents(events, core.EventSpawn); n != 0 {
			t.Fatalf("frame %d: %d spawns during rain", i+1, n)
		}
	}

	events = s.Update(0.25, core.Pointer{})
	if s.Raining() {
		t.Fatal("rain should stop after 5s")
	}
	if countEvents(events, core.EventRainStop) != 1 {
		t.Errorf("expected rain_stop, got %+v", events)
	}
	if countEvents(events, core.EventSpawn) == 0 {
		t.Error("spawns should resume in the frame the rain stops")
	}
}

func TestRainRestartsOnPestHit(t *testing.T) {
	s := newTestSession(t, Hard, &stubRand{})
	skipCountdown(t, s)

	show(s, 0, KindPest)
	s.Update(0.25, pressOn(s.slots[0].Rect))
	for i := 0; i < 8; i++ {
		s.Update(0.25, core.Pointer{})
	}
	if s.RainLeft() != 3.0 {
		t.Fatalf("rain left = %g, expected 3", s.RainLeft())
	}

	show(s, 3, KindPest)
	s.Update(0.25, pressOn(s.slots[3].Rect))
	if s.RainLeft() != 5.0 {
		t.Errorf("rain should restart at 5s, got %g", s.RainLeft())
	}
}

func TestRainKeepsVisibleSlots(t *testing.T) {
	s := newTestSession(t, Hard, &stubRand{})
	skipCountdown(t, s)
	show(s, 0, KindPest)
	show(s, 1, KindGolden)

	s.Update(0.25, pressOn(s.slots[0].Rect))
	if !s.Raining() || !s.Slots()[1].Visible {
		t.Fatal("rain should not hide slots already visible")
	}

	s.Update(0.25, pressOn(s.slots[1].Rect))
	if s.Score() != 2 {
		t.Errorf("visible golden should still be hittable during rain, score = %d", s.Score())
	}
}

func TestSessionEnds(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})
	skipCountdown(t, s)

	var ended []core.Event
	for i := 0; i < 240 && !s.Ended(); i++ {
		ended = s.Update(0.5, core.Pointer{})
	}

	if !s.Ended() {
		t.Fatal("session should end after 120s")
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %g, expected exactly 0", s.Remaining())
	}
	if countEvents(ended, core.EventSessionEnd) != 1 {
		t.Errorf("expected session_end, got %+v", ended)
	}

	show(s, 0, KindNormal)
	before := s.Snapshot()
	if events := s.Update(0.5, pressOn(s.slots[0].Rect)); events != nil {
		t.Errorf("ended session should not report events, got %+v", events)
	}
	after := s.Snapshot()
	if after.Score != before.Score || after.Remaining != 0 || after.Slots[0] != before.Slots[0] {
		t.Error("ended session should ignore updates")
	}
}

func TestReleaseAndRestart(t *testing.T) {
	r := &stubRand{}
	s := newTestSession(t, Medium, r)
	skipCountdown(t, s)
	show(s, 0, KindNormal)
	s.Update(0.1, pressOn(s.slots[0].Rect))

	s.Release()
	if s.Active() {
		t.Fatal("released session should be inactive")
	}
	if events := s.Update(1, core.Pointer{}); events != nil {
		t.Error("inactive session should ignore updates")
	}

	if err := s.Start(Hard, 2); err != nil {
		t.Fatal(err)
	}
	if len(s.Slots()) != 5 || s.Score() != 0 || s.Remaining() != 120 {
		t.Errorf("restart should reinitialize the session: %+v", s.Snapshot())
	}
}

func TestDrawKind(t *testing.T) {
	table := config.DefaultConfig().Difficulties

	tests := []struct {
		tuning   config.Tuning
		chance   int
		expected Kind
	}{
		{table.Easy, 1, KindPest},
		{table.Easy, 10, KindPest},
		{table.Easy, 11, KindNormal},
		{table.Easy, 18, KindNormal},
		{table.Medium, 15, KindPest},
		{table.Medium, 16, KindGolden},
		{table.Medium, 18, KindGolden},
		{table.Medium, 19, KindNormal},
		{table.Hard, 20, KindPest},
		{table.Hard, 21, KindGolden},
		{table.Hard, 25, KindGolden},
		{table.Hard, 26, KindNormal},
		{table.Hard, 100, KindNormal},
	}

	for _, tc := range tests {
		if got := drawKind(tc.tuning, tc.chance); got != tc.expected {
			t.Errorf("drawKind(pest=%d golden=%d, %d) = %s, expected %s",
				tc.tuning.PestChance, tc.tuning.GoldenChance, tc.chance, got, tc.expected)
		}
	}
}

func TestSpawnThreshold(t *testing.T) {
	// A roll equal to int(dt*1000/intervalMin) does not spawn; one below does.
	roll := 0
	r := randFunc(func(lo, hi int) int {
		if lo == 0 && hi == 1000 {
			return roll
		}
		return lo
	})

	s := newTestSession(t, Easy, r)
	skipCountdown(t, s)

	// 0.375 * 1000 / 1.5 = 250
	roll = 250
	if events := s.Update(0.375, core.Pointer{}); countEvents(events, core.EventSpawn) != 0 {
		t.Errorf("roll at the threshold should not spawn: %+v", events)
	}
	roll = 249
	if events := s.Update(0.375, core.Pointer{}); countEvents(events, core.EventSpawn) != 3 {
		t.Errorf("roll below the threshold should spawn in every empty slot: %+v", events)
	}
}

func TestClockAndLabels(t *testing.T) {
	s := newTestSession(t, Easy, &stubRand{})
	if s.Clock() != "02:00" {
		t.Errorf("Clock() = %q, expected 02:00", s.Clock())
	}
	skipCountdown(t, s)
	s.Update(45.5, core.Pointer{})
	if s.Clock() != "01:14" {
		t.Errorf("Clock() = %q, expected 01:14", s.Clock())
	}
}

func TestMathRandRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(500, 800)
		if v < 500 || v > 800 {
			t.Fatalf("IntRange(500, 800) = %d", v)
		}
	}
	if r.IntRange(7, 7) != 7 {
		t.Error("IntRange with equal bounds should return the bound")
	}
}

// randFunc adapts a function to RandSource.
type randFunc func(lo, hi int) int

func (f randFunc) IntRange(lo, hi int) int { return f(lo, hi) }
