package race

import "math/rand"

// LaneCount is the number of lanes on the road.
const LaneCount = 3

// StartLane is where the vehicle sits when a session begins.
const StartLane = 1

// Phase is the session's position in the round state machine.
type Phase int

const (
	PhaseIdle       Phase = iota // not started, or torn down
	PhaseWaiting                 // problem shown, options not yet falling
	PhaseDescending              // options falling toward the vehicle
	PhaseCorrect                 // correct arrival, holding the flash
	PhaseIncorrect               // incorrect arrival, holding the flash
	PhaseOver                    // terminated, final score reported
)

// String returns a short phase name for logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWaiting:
		return "waiting"
	case PhaseDescending:
		return "descending"
	case PhaseCorrect:
		return "correct"
	case PhaseIncorrect:
		return "incorrect"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Feedback is the transient result flash after an arrival.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Session owns the authoritative per-tick state of one game.
//
// A Session is not safe for concurrent use. The driver calls Advance from
// its tick loop and Command from the same goroutine between ticks.
type Session struct {
	params Params
	rng    *rand.Rand
	sink   EventSink
	timers scheduler

	tick       uint64
	generation uint64 // bumped on every Start and Teardown
	advancing  bool

	phase         Phase
	score         int
	lane          int
	problem       Problem
	hasProblem    bool
	options       []AnswerOption
	descentActive bool
	progress      float64
	feedback      Feedback
	overSent      bool

	armTimer  timerHandle
	holdTimer timerHandle
}

// NewSession creates an idle session. Call Start to begin playing.
// A nil sink discards events.
func NewSession(params Params, rng *rand.Rand, sink EventSink) *Session {
	return &Session{
		params:   params,
		rng:      rng,
		sink:     sink,
		lane:     StartLane,
		progress: params.DescentStart,
	}
}

// Start begins a fresh session with score 0, discarding any previous one.
func (s *Session) Start() {
	s.Teardown()
	s.generation++
	s.score = 0
	s.lane = StartLane
	s.overSent = false
	s.setupRound()
}

// Restart begins a new session after game over. It is identical to Start.
func (s *Session) Restart() {
	s.Start()
}

// Teardown cancels all pending timers and returns the session to idle.
// Any handle obtained before Teardown becomes inert.
func (s *Session) Teardown() {
	s.timers.reset()
	s.generation++
	s.armTimer = timerHandle{}
	s.holdTimer = timerHandle{}
	s.phase = PhaseIdle
	s.hasProblem = false
	s.options = nil
	s.descentActive = false
	s.progress = s.params.DescentStart
	s.feedback = FeedbackNone
}

// Running reports whether a session is in progress.
func (s *Session) Running() bool {
	switch s.phase {
	case PhaseWaiting, PhaseDescending, PhaseCorrect, PhaseIncorrect:
		return true
	default:
		return false
	}
}

// Over reports whether the last session terminated with a game over.
func (s *Session) Over() bool {
	return s.phase == PhaseOver
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lane returns the vehicle's lane.
func (s *Session) Lane() int {
	return s.lane
}

// Tick returns the number of ticks advanced since the session was created.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Advance runs n ticks. Each tick fires due timers, then moves the
// descent once and evaluates at most one arrival. A sink that starts or
// tears down the session from inside Emit stops the remaining ticks.
// Calls made from inside Emit are ignored.
func (s *Session) Advance(n int) {
	if s.advancing {
		return
	}
	s.advancing = true
	defer func() { s.advancing = false }()

	gen := s.generation
	for i := 0; i < n && gen == s.generation; i++ {
		s.step(gen)
	}
}

func (s *Session) step(gen uint64) {
	s.tick++

	for {
		t, ok := s.timers.pop(s.tick)
		if !ok {
			break
		}
		s.fire(t)
		if gen != s.generation {
			return
		}
	}

	if !s.descentActive {
		return
	}
	s.progress += s.params.DescentSpeed
	if s.progress >= s.params.ArrivalThreshold {
		s.arrive()
	}
}

func (s *Session) fire(t pendingTimer) {
	switch t.kind {
	case timerArmDescent:
		s.armTimer = timerHandle{}
		if s.phase != PhaseWaiting {
			return
		}
		s.progress = s.params.DescentStart
		s.descentActive = true
		s.phase = PhaseDescending

	case timerCorrectDone:
		s.holdTimer = timerHandle{}
		if s.phase != PhaseCorrect {
			return
		}
		s.setupRound()

	case timerIncorrectDone:
		s.holdTimer = timerHandle{}
		if s.phase != PhaseIncorrect {
			return
		}
		s.terminate()
	}
}

// setupRound replaces the problem and options and schedules the descent.
func (s *Session) setupRound() {
	s.problem = GenerateProblem(s.rng, s.params.MinAddend, s.params.MaxAddend)
	s.hasProblem = true
	s.options = GenerateOptions(s.rng, s.problem.Answer)
	s.feedback = FeedbackNone
	s.descentActive = false
	s.progress = s.params.DescentStart
	s.phase = PhaseWaiting

	s.timers.cancel(s.armTimer)
	s.armTimer = s.timers.after(s.tick, s.params.AnswerDelayTicks, timerArmDescent)
}

// arrive evaluates the option in the vehicle's lane. The round event is
// built before any emit; a sink that replaces the session on the cue
// drops it.
func (s *Session) arrive() {
	s.descentActive = false
	s.progress = s.params.DescentStart

	chosen := s.options[s.lane]
	cue := CueIncorrect
	if chosen.IsCorrect {
		s.score++
		s.feedback = FeedbackCorrect
		s.phase = PhaseCorrect
		s.holdTimer = s.timers.after(s.tick, s.params.CorrectHoldTicks, timerCorrectDone)
		cue = CueCorrect
	} else {
		s.feedback = FeedbackIncorrect
		s.phase = PhaseIncorrect
		s.holdTimer = s.timers.after(s.tick, s.params.IncorrectHoldTicks, timerIncorrectDone)
	}

	round := RoundEvent{
		Problem: s.problem,
		Chosen:  chosen,
		Lane:    s.lane,
		Score:   s.score,
		Tick:    s.tick,
	}

	gen := s.generation
	s.emit(CueEvent{Cue: cue})
	if gen != s.generation {
		return
	}
	s.emit(round)
}

// terminate ends the session and reports the final score once.
func (s *Session) terminate() {
	s.timers.reset()
	s.armTimer = timerHandle{}
	s.holdTimer = timerHandle{}
	s.descentActive = false
	s.phase = PhaseOver
	if s.overSent {
		return
	}
	s.overSent = true
	s.emit(GameOverEvent{Score: s.score})
}

func (s *Session) emit(evt Event) {
	if s.sink != nil {
		s.sink.Emit(evt)
	}
}
