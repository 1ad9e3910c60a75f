package audio

import "testing"

var (
	_ Player = Speaker{}
	_ Player = (*Silent)(nil)
)

func TestToggleMute(t *testing.T) {
	start := Muted()
	defer func() {
		if Muted() != start {
			ToggleMute()
		}
	}()

	if got := ToggleMute(); got == start {
		t.Fatalf("ToggleMute() = %v, want %v", got, !start)
	}
	if Muted() == start {
		t.Error("Muted() did not follow the toggle")
	}
	if got := ToggleMute(); got != start {
		t.Errorf("second ToggleMute() = %v, want %v", got, start)
	}
}

func TestSpeakerWithoutInitIsSilent(t *testing.T) {
	if Ready() {
		t.Skip("speaker already initialized")
	}

	// None of these may panic without an output device.
	var p Speaker
	p.Play(SoundCorrect)
	p.PlayMusic()
	p.StopMusic()
	Close()
}

func TestSilentMuteIsLocal(t *testing.T) {
	a, b := &Silent{}, &Silent{}
	start := Muted()

	if !a.ToggleMute() || !a.Muted() {
		t.Error("Silent.ToggleMute() did not mute")
	}
	if b.Muted() {
		t.Error("muting one Silent player muted another")
	}
	if Muted() != start {
		t.Error("Silent player changed the process-wide mute state")
	}
}
