package main

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) *terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 90)

	cfg := testConfig()
	term := &terminal{
		cfg:    cfg,
		screen: screen,
		r:      newCellRenderer(screen, cfg.Width, cfg.Height),
	}
	term.newGame()
	return term
}

func cellRune(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func TestCellRendererText(t *testing.T) {
	term := newTestTerminal(t)
	term.r.DrawText("Hi", 100, 100, 16, white, AlignLeft)
	if cellRune(term.screen, 10, 10) != 'H' || cellRune(term.screen, 11, 10) != 'i' {
		t.Error("expected left aligned text at the scaled position")
	}

	term.r.DrawText("abcd", 300, 200, 16, white, AlignCenter)
	if cellRune(term.screen, 28, 20) != 'a' || cellRune(term.screen, 31, 20) != 'd' {
		t.Error("expected centred text")
	}

	term.r.DrawText("xy", 600, 300, 16, white, AlignRight)
	if cellRune(term.screen, 58, 30) != 'x' {
		t.Error("expected right aligned text ending at the anchor")
	}
}

func TestCellRendererProgressBar(t *testing.T) {
	term := newTestTerminal(t)
	term.r.DrawProgressBar(0, 0, 100, 10, 0.5, "#ff0000")
	for col := 0; col < 10; col++ {
		want := '░'
		if col < 5 {
			want = '█'
		}
		if got := cellRune(term.screen, col, 0); got != want {
			t.Errorf("col %d: expected %q, got %q", col, want, got)
		}
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	term := newTestTerminal(t)
	if term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("expected q to quit")
	}
	if term.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("expected escape to quit")
	}
}

func TestTerminalSteering(t *testing.T) {
	term := newTestTerminal(t)
	p := term.game.Player()

	term.handleInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	term.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if p.TargetX != 300-keyboardStep || p.TargetY != 820-keyboardStep {
		t.Errorf("unexpected target (%f,%f)", p.TargetX, p.TargetY)
	}

	term.handleInput(tcell.NewEventMouse(30, 45, tcell.ButtonNone, tcell.ModNone))
	if math.Abs(p.TargetX-305) > 1e-9 || math.Abs(p.TargetY-455) > 1e-9 {
		t.Errorf("expected mouse target at (305,455), got (%f,%f)", p.TargetX, p.TargetY)
	}
}

func TestTerminalRestartOnlyWhenOver(t *testing.T) {
	term := newTestTerminal(t)
	first := term.game

	term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if term.game != first {
		t.Fatal("restarted a running game")
	}

	first.Emit(PlayerDestroyedEvent{})
	if !term.hud.GameOver {
		t.Fatal("expected the HUD to show game over")
	}
	term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if term.game == first || !term.game.Running() || term.hud.GameOver {
		t.Error("expected a fresh game with a fresh HUD")
	}
}

func TestTerminalDraw(t *testing.T) {
	term := newTestTerminal(t)
	term.draw()
	if cellRune(term.screen, 0, 0) != 'S' {
		t.Error("expected the score line in the top left corner")
	}
}
