package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-net/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"vim right", runeKey('l'), core.ActionRight, false},
		{"rotate anticlockwise", runeKey('z'), core.ActionRotateCCW, false},
		{"rotate anticlockwise comma", runeKey(','), core.ActionRotateCCW, false},
		{"rotate clockwise", runeKey('x'), core.ActionRotateCW, false},
		{"lock", runeKey(' '), core.ActionLock, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"new puzzle", runeKey('r'), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('m'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, &frame)

	want := []core.Click{
		{X: 3, Y: 4, Button: core.MouseLeft},
		{X: 5, Y: 6, Button: core.MouseRight},
		{X: 7, Y: 8, Button: core.MouseMiddle},
	}
	if len(frame.Clicks) != len(want) {
		t.Fatalf("clicks = %v, want %v", frame.Clicks, want)
	}
	for i := range want {
		if frame.Clicks[i] != want[i] {
			t.Errorf("click %d = %+v, want %+v", i, frame.Clicks[i], want[i])
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want MenuActionScoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want MenuActionSelect", got)
	}
	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, want MenuActionDown", got)
	}
}
