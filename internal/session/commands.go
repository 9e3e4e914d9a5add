package session

// Command is a discrete input shared by all frontends. Its meaning depends on
// the current mode.
type Command int

const (
	// CmdNone is ignored.
	CmdNone Command = iota
	// CmdSelect starts a session from the menu, or toggles pause while running.
	CmdSelect
	// CmdBack returns to the menu while running, or quits from the menu.
	CmdBack
	// CmdClear kills every cell.
	CmdClear
	// CmdRandomize fills the board with a random soup.
	CmdRandomize
	// CmdStep advances one generation while paused.
	CmdStep
)

// Apply executes cmd and reports whether the frontend should quit.
func (s *Session) Apply(cmd Command) (quit bool) {
	switch s.mode {
	case ModeMenu:
		switch cmd {
		case CmdSelect:
			s.Start()
		case CmdBack:
			s.logger.Info("quit requested from menu")
			return true
		}
	case ModeRunning:
		switch cmd {
		case CmdSelect:
			s.TogglePause()
		case CmdBack:
			s.Menu()
		case CmdClear:
			s.Clear()
		case CmdRandomize:
			s.Randomize()
		case CmdStep:
			s.StepOnce()
		}
	}
	return false
}
