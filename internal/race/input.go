package race

// Direction is a lane-change command.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Command steers the vehicle one lane. It does nothing while a feedback
// flash is showing or when no session is running. Moves past the edge
// lanes are clamped. Only a real lane change emits the move cue.
// Returns whether the lane changed.
func (s *Session) Command(d Direction) bool {
	if s.feedback != FeedbackNone || !s.Running() {
		return false
	}

	lane := s.lane
	switch d {
	case Left:
		lane--
	case Right:
		lane++
	default:
		return false
	}
	if lane < 0 {
		lane = 0
	}
	if lane > LaneCount-1 {
		lane = LaneCount - 1
	}
	if lane == s.lane {
		return false
	}

	s.lane = lane
	s.emit(CueEvent{Cue: CueMove})
	return true
}
