package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickpong/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionResume},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionResume},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, core.ActionNewGame},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionSave},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, core.ActionLoad},
		{"?", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHelp},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}
