package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-racer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"m", runeKey('m'), core.ActionMute, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runeKey('a'), runeKey('a'), runeKey('d'), runeKey('z')} {
		if keys.MapKeyToFrame(msg, &frame) {
			t.Fatalf("%q reported as quit", msg.String())
		}
	}

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRight}
	if len(frame.Actions) != len(want) {
		t.Fatalf("frame = %v, want %v", frame.Actions, want)
	}
	for i := range want {
		if frame.Actions[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, frame.Actions[i], want[i])
		}
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
	if len(frame.Actions) != 0 {
		t.Errorf("quit added actions to the frame: %v", frame.Actions)
	}
}

func TestHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 9 {
		t.Errorf("full help lists %d bindings, want 9", n)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
}
