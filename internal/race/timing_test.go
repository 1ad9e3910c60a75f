package race

import (
	"testing"
	"time"
)

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d    time.Duration
		rate int
		want int
	}{
		{4000 * time.Millisecond, 60, 240},
		{300 * time.Millisecond, 60, 18},
		{500 * time.Millisecond, 60, 30},
		{4000 * time.Millisecond, 30, 120},
		{10 * time.Millisecond, 60, 1},
		{20 * time.Millisecond, 60, 2},
		{0, 60, 1},
		{time.Second, 0, 60},
	}

	for _, tt := range tests {
		if got := TicksFor(tt.d, tt.rate); got != tt.want {
			t.Errorf("TicksFor(%v, %d) = %d, want %d", tt.d, tt.rate, got, tt.want)
		}
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams(60)

	if p.AnswerDelayTicks != 240 || p.CorrectHoldTicks != 18 || p.IncorrectHoldTicks != 30 {
		t.Errorf("unexpected tick timings: %+v", p)
	}
	if p.DescentStart != -20 || p.ArrivalThreshold != 80 || p.DescentSpeed != 0.5 {
		t.Errorf("unexpected descent: %+v", p)
	}
	if got := p.DescentTicks(); got != 200 {
		t.Errorf("DescentTicks() = %d, want 200", got)
	}
}

func TestDescentTicksRoundsUp(t *testing.T) {
	p := Params{DescentStart: 0, ArrivalThreshold: 10, DescentSpeed: 3}
	if got := p.DescentTicks(); got != 4 {
		t.Errorf("DescentTicks() = %d, want 4", got)
	}

	p.DescentSpeed = 0
	if got := p.DescentTicks(); got != 0 {
		t.Errorf("DescentTicks() with zero speed = %d, want 0", got)
	}
}
