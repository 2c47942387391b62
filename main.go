package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default: built-in settings)")
	headless := flag.Bool("headless", false, "Run without a terminal, steered by the autopilot")
	ticks := flag.Int("ticks", 60*TickRate, "Ticks to simulate in headless mode")
	seed := flag.Uint64("seed", 0, "Random seed (0 = config value, or random)")
	logPath := flag.String("log", "", "Write logs to this file (default: stderr when headless, discarded otherwise)")
	flag.Parse()

	if err := run(*configPath, *headless, *ticks, *seed, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "emoji-shooter:", err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool, ticks int, seed uint64, logPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	var out io.Writer = io.Discard
	if headless {
		out = os.Stderr
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if headless {
		return runHeadless(ctx, cfg, logger, ticks, os.Stdout)
	}
	return runTerminal(ctx, cfg, logger)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lv slog.Level
	if level != "" {
		if err := lv.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})), nil
}

// runHeadless plays up to ticks ticks with the autopilot and prints a summary
func runHeadless(ctx context.Context, cfg Config, logger *slog.Logger, ticks int, out io.Writer) error {
	g := NewGame(cfg, logger)
	for i := 0; i < ticks && g.Running(); i++ {
		if ctx.Err() != nil {
			break
		}
		autopilot(g)
		g.Update()
	}
	logger.Info("headless run finished",
		"run", g.RunID(), "tick", g.Tick(), "score", g.Score(), "level", g.Level(),
		"lives", g.Lives(), "handler_failures", g.HandlerFailures())
	_, err := fmt.Fprintf(out, "run %s seed %d: tick %d score %d level %d lives %d running %t\n",
		g.RunID(), g.Seed(), g.Tick(), g.Score(), g.Level(), g.Lives(), g.Running())
	return err
}

// autopilot keeps the ship near the bottom, under the nearest enemy, away
// from incoming shots, and fires the special as soon as it is armed
func autopilot(g *Game) {
	p := g.Player()
	x := p.X
	if h := g.nearestEnemy(); h.Valid() {
		if e, ok := g.registry.Resolve(h); ok {
			x = e.X
		}
	}
	for _, b := range g.enemyBullets {
		if b.Y < p.Y && p.Y-b.Y < p.Size*3 && math.Abs(b.X-x) < p.Size {
			if b.X < x {
				x += p.Size
			} else {
				x -= p.Size
			}
			break
		}
	}
	g.SetTarget(x, g.cfg.Height-playerStartOffset)
	if g.CanStarBurst() {
		g.TriggerStarBurst()
	}
}
