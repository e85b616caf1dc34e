package core

// EventType identifies something that happened during a frame.
type EventType int

const (
	EventNone           EventType = iota
	EventSessionStart             // A new session was created
	EventCountdownDone            // The start countdown elapsed
	EventSpawn                    // A sprite appeared in a slot
	EventHit                      // A visible sprite was clicked
	EventRainStart                // Rain started or was restarted
	EventRainStop                 // Rain ran out
	EventSessionEnd               // Session time ran out
	EventSessionRelease           // The player left a session before or after it ended
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventSessionStart:
		return "session_start"
	case EventCountdownDone:
		return "countdown_done"
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventRainStart:
		return "rain_start"
	case EventRainStop:
		return "rain_stop"
	case EventSessionEnd:
		return "session_end"
	case EventSessionRelease:
		return "session_release"
	default:
		return "none"
	}
}

// Event is a game occurrence reported to the platform for sound and logging.
type Event struct {
	Type  EventType
	Slot  int    // Slot index for spawn/hit events, -1 otherwise
	Kind  string // Sprite kind for spawn/hit events
	Delta int    // Score change applied by a hit
	Score int    // Score after the event
}
