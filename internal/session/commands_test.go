package session

import (
	"testing"

	"conway/internal/life"
)

func TestApplyInMenu(t *testing.T) {
	s := New(life.NewEngine(5, 5, 8), nil)
	for _, cmd := range []Command{CmdNone, CmdClear, CmdRandomize, CmdStep} {
		if s.Apply(cmd) {
			t.Fatalf("command %d quit from the menu", cmd)
		}
		if s.Mode() != ModeMenu {
			t.Fatalf("command %d left the menu", cmd)
		}
	}
	if !s.Apply(CmdBack) {
		t.Fatal("back from the menu should quit")
	}
	if s.Apply(CmdSelect) {
		t.Fatal("select should not quit")
	}
	if s.Mode() != ModeRunning {
		t.Fatal("select from the menu should start a session")
	}
}

func TestApplyWhileRunning(t *testing.T) {
	s := New(life.NewEngine(6, 6, 8), nil)
	s.Apply(CmdSelect)

	s.Apply(CmdRandomize)
	if s.Engine().Population() == 0 {
		t.Fatal("randomize command had no effect")
	}
	s.Apply(CmdStep)
	if s.Generation() != 1 {
		t.Fatalf("generation after step = %d, want 1", s.Generation())
	}
	s.Apply(CmdClear)
	if s.Engine().Population() != 0 || s.Generation() != 0 {
		t.Fatal("clear command did not reset the board")
	}

	s.Apply(CmdSelect)
	if s.Paused() {
		t.Fatal("select while running should unpause")
	}
	if s.Apply(CmdBack) {
		t.Fatal("back while running should not quit")
	}
	if s.Mode() != ModeMenu {
		t.Fatal("back while running should return to the menu")
	}
}
