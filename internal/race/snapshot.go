package race

// Snapshot is a read-only copy of the session state for one frame.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Score           int
	Lane            int
	Problem         Problem
	HasProblem      bool
	Options         []AnswerOption // copy; nil before the first round
	DescentActive   bool
	DescentProgress float64
	Feedback        Feedback

	DescentStart     float64
	ArrivalThreshold float64
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	var options []AnswerOption
	if len(s.options) > 0 {
		options = make([]AnswerOption, len(s.options))
		copy(options, s.options)
	}
	return Snapshot{
		Tick:             s.tick,
		Phase:            s.phase,
		Score:            s.score,
		Lane:             s.lane,
		Problem:          s.problem,
		HasProblem:       s.hasProblem,
		Options:          options,
		DescentActive:    s.descentActive,
		DescentProgress:  s.progress,
		Feedback:         s.feedback,
		DescentStart:     s.params.DescentStart,
		ArrivalThreshold: s.params.ArrivalThreshold,
	}
}

// OptionsVisible reports whether the answer row is on screen.
func (snap Snapshot) OptionsVisible() bool {
	return snap.DescentActive && len(snap.Options) == OptionCount
}
