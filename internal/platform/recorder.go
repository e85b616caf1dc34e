// Package platform holds the frontend-independent handling of a game's
// frame output: logging, score recording and sound.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/logging"
	"github.com/vovakirdan/barigueira/internal/storage"
)

// Sink receives the events of every frame, e.g. a sound player.
type Sink interface {
	Handle(events []core.Event)
	Hold(held bool)
}

// Recorder reacts to the events of each frame. The zero value only logs
// to a discarding logger.
type Recorder struct {
	GameID string
	Store  *storage.Store // Optional; finished sessions are recorded here
	Logger *log.Logger    // Optional
	Sound  Sink           // Optional
	RunID  string         // Groups recorded scores; generated on first use when empty
	User   string         // Shown in logs
}

func (r *Recorder) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = logging.Discard()
	}
	return r.Logger
}

// Record handles one frame. state is the game state after the frame.
func (r *Recorder) Record(state core.GameState, events []core.Event) {
	logger := r.logger()
	for _, e := range events {
		switch e.Type {
		case core.EventSessionStart:
			logger.Info("session started", "user", r.User, "difficulty", state.Difficulty)
		case core.EventSessionEnd:
			logger.Info("session ended", "user", r.User, "difficulty", state.Difficulty, "score", e.Score)
			r.save(state.Difficulty, e.Score)
		case core.EventSessionRelease:
			logger.Info("session released", "user", r.User, "score", e.Score)
		case core.EventHit:
			logger.Debug("hit", "slot", e.Slot, "kind", e.Kind, "delta", e.Delta, "score", e.Score)
		case core.EventRainStart, core.EventRainStop:
			logger.Debug(e.Type.String())
		}
	}

	if r.Sound != nil {
		if len(events) > 0 {
			r.Sound.Handle(events)
		}
		r.Sound.Hold(state.Paused)
	}
}

func (r *Recorder) save(difficulty string, score int) {
	if r.Store == nil {
		return
	}
	if r.RunID == "" {
		r.RunID = storage.NewRunID()
	}
	_, err := r.Store.SaveScore(storage.ScoreEntry{
		RunID:      r.RunID,
		GameID:     r.GameID,
		Difficulty: difficulty,
		Score:      score,
	})
	if err != nil {
		r.logger().Warn("could not save score", "error", err)
	}
}
