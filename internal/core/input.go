package core

// Action represents a semantic host action, abstracted from physical key presses.
// Hosts translate their input into actions and actions into simulation calls.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move human paddle up
	ActionDown            // S, Down arrow - move human paddle down
	ActionPause           // P - toggle pause
	ActionResume          // Space, Enter - start or resume play
	ActionNewGame         // N - reset scores and start over
	ActionSave            // Ctrl+S - save snapshot to the current slot
	ActionLoad            // Ctrl+L - restore snapshot from the current slot
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionNewGame:
		return "NewGame"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
