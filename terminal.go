package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/sync/errgroup"
)

const keyboardStep = 30.0 // playfield units per arrow key press

// cellRenderer draws onto a tcell screen, stretching the playfield over the
// whole terminal
type cellRenderer struct {
	screen tcell.Screen
	sx, sy float64 // cells per playfield unit
}

func newCellRenderer(screen tcell.Screen, width, height float64) *cellRenderer {
	r := &cellRenderer{screen: screen}
	r.resize(width, height)
	return r
}

func (r *cellRenderer) resize(width, height float64) {
	cols, rows := r.screen.Size()
	r.sx = float64(cols) / width
	r.sy = float64(rows) / height
}

func (r *cellRenderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x * r.sx)), int(math.Floor(y * r.sy))
}

// toPlayfield maps a cell back to the centre of the area it covers
func (r *cellRenderer) toPlayfield(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / r.sx, (float64(row) + 0.5) / r.sy
}

func styleFor(color string) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(color))
}

// DrawText places content on one row. size has no meaning on a terminal.
func (r *cellRenderer) DrawText(content string, x, y, size float64, color string, align Align) {
	col, row := r.cell(x, y)
	switch align {
	case AlignCenter:
		col -= runewidth.StringWidth(content) / 2
	case AlignRight:
		col -= runewidth.StringWidth(content)
	case AlignLeft:
	}
	style := styleFor(color)

	gr := uniseg.NewGraphemes(content)
	for gr.Next() {
		runes := gr.Runes()
		r.screen.SetContent(col, row, runes[0], runes[1:], style)
		col += max(1, runewidth.StringWidth(gr.Str()))
	}
}

// DrawProgressBar fills a cell rectangle, the first fraction of each row in
// color and the rest dimmed
func (r *cellRenderer) DrawProgressBar(x, y, w, h, fraction float64, color string) {
	col0, row0 := r.cell(x, y)
	col1, row1 := r.cell(x+w, y+h)
	width := max(1, col1-col0)
	rows := max(1, row1-row0)
	filled := int(math.Round(Clamp(fraction, 0, 1) * float64(width)))

	fg := styleFor(color)
	bg := tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < width; dx++ {
			if dx < filled {
				r.screen.SetContent(col0+dx, row0+dy, '█', nil, fg)
			} else {
				r.screen.SetContent(col0+dx, row0+dy, '░', nil, bg)
			}
		}
	}
}

// terminal owns the screen and the current game. Every Game call happens on
// the frame goroutine.
type terminal struct {
	cfg    Config
	log    *slog.Logger
	screen tcell.Screen
	r      *cellRenderer
	game   *Game
	hud    *HUD
}

// runTerminal plays interactively until the user quits or ctx is cancelled
func runTerminal(ctx context.Context, cfg Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &terminal{
		cfg:    cfg,
		log:    logger,
		screen: screen,
		r:      newCellRenderer(screen, cfg.Width, cfg.Height),
	}
	t.newGame()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// PollEvent returns nil once the frame loop calls Fini
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		defer cancel()
		defer screen.Fini()
		return t.loop(ctx, events)
	})
	return eg.Wait()
}

func (t *terminal) newGame() {
	t.game = NewGame(t.cfg, t.log)
	t.hud = AttachHUD(t.game)
}

func (t *terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			t.game.Update()
			t.draw()
		}
	}
}

// handleInput returns false when the user asked to quit
func (t *terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		p := t.game.Player()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.game.SetTarget(p.TargetX-keyboardStep, p.TargetY)
		case tcell.KeyRight:
			t.game.SetTarget(p.TargetX+keyboardStep, p.TargetY)
		case tcell.KeyUp:
			t.game.SetTarget(p.TargetX, p.TargetY-keyboardStep)
		case tcell.KeyDown:
			t.game.SetTarget(p.TargetX, p.TargetY+keyboardStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				t.game.TriggerStarBurst()
			case 'r':
				if !t.game.Running() {
					t.newGame()
				}
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.r.toPlayfield(col, row)
		t.game.SetTarget(x, y)
		if ev.Buttons()&tcell.Button2 != 0 {
			t.game.TriggerStarBurst()
		}
	case *tcell.EventResize:
		t.r.resize(t.cfg.Width, t.cfg.Height)
		t.screen.Sync()
	}
	return true
}

func (t *terminal) draw() {
	t.screen.Clear()
	t.game.Render(t.r)
	t.hud.Draw(t.r, t.cfg.Width, t.cfg.Height)
	t.screen.Show()
}
