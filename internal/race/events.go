package race

// Event is something the session reports to the presentation layer.
type Event interface {
	raceEvent()
}

// Cue names a sound or visual cue.
type Cue int

const (
	CueMove Cue = iota
	CueCorrect
	CueIncorrect
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// CueEvent is emitted on every accepted lane change and every resolution.
type CueEvent struct {
	Cue Cue
}

func (CueEvent) raceEvent() {}

// RoundEvent describes a resolved round.
type RoundEvent struct {
	Problem Problem
	Chosen  AnswerOption
	Lane    int
	Score   int // score after the round was applied
	Tick    uint64
}

func (RoundEvent) raceEvent() {}

// GameOverEvent is emitted exactly once when a session terminates.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) raceEvent() {}

// EventSink receives session events. Emit is called synchronously from
// Advance and Command and must not block.
type EventSink interface {
	Emit(evt Event)
}

// SinkFunc adapts a plain function to EventSink.
type SinkFunc func(evt Event)

// Emit calls f(evt).
func (f SinkFunc) Emit(evt Event) {
	f(evt)
}

// Recorder buffers events until they are drained.
type Recorder struct {
	events []Event
}

// Emit appends evt to the buffer.
func (r *Recorder) Emit(evt Event) {
	r.events = append(r.events, evt)
}

// Drain returns the buffered events and empties the buffer.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}

// Len returns the number of buffered events.
func (r *Recorder) Len() int {
	return len(r.events)
}
