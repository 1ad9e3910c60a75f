package race

// timerKind identifies what a pending timer does when it fires.
type timerKind int

const (
	timerArmDescent timerKind = iota
	timerCorrectDone
	timerIncorrectDone
)

// timerHandle refers to one scheduled timer. The zero handle is inert.
type timerHandle struct {
	id  uint64
	gen uint64
}

type pendingTimer struct {
	handle timerHandle
	due    uint64
	kind   timerKind
}

// scheduler runs one-shot timers against the session's tick counter.
// reset bumps the generation so handles issued before it never fire,
// even if a caller still holds them.
type scheduler struct {
	gen     uint64
	nextID  uint64
	pending []pendingTimer
}

// after schedules kind to fire once the tick counter reaches now+ticks.
func (s *scheduler) after(now uint64, ticks int, kind timerKind) timerHandle {
	if ticks < 1 {
		ticks = 1
	}
	s.nextID++
	h := timerHandle{id: s.nextID, gen: s.gen}
	s.pending = append(s.pending, pendingTimer{
		handle: h,
		due:    now + uint64(ticks),
		kind:   kind,
	})
	return h
}

// cancel removes a pending timer. Unknown or stale handles are ignored.
func (s *scheduler) cancel(h timerHandle) {
	if h.id == 0 {
		return
	}
	for i, p := range s.pending {
		if p.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// reset cancels everything and invalidates all outstanding handles.
func (s *scheduler) reset() {
	s.gen++
	s.pending = s.pending[:0]
}

// active reports whether h is still pending.
func (s *scheduler) active(h timerHandle) bool {
	if h.id == 0 || h.gen != s.gen {
		return false
	}
	for _, p := range s.pending {
		if p.handle == h {
			return true
		}
	}
	return false
}

// pop removes and returns the earliest timer due at or before now.
func (s *scheduler) pop(now uint64) (pendingTimer, bool) {
	best := -1
	for i, p := range s.pending {
		if p.due > now || p.handle.gen != s.gen {
			continue
		}
		if best < 0 || p.due < s.pending[best].due {
			best = i
		}
	}
	if best < 0 {
		return pendingTimer{}, false
	}
	p := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	return p, true
}

// count returns the number of pending timers.
func (s *scheduler) count() int {
	return len(s.pending)
}
