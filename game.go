package main

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// TickDuration is the wall-clock length of one tick for real-time drivers
const TickDuration = time.Second / TickRate

const (
	playerStartOffset = 80.0 // distance of the ship from the bottom edge
	rainbowThreshold  = 3
)

// Game is the simulation context. It owns every entity and counter and is
// not safe for concurrent use.
type Game struct {
	cfg   Config
	log   *slog.Logger
	pcg   *rand.PCG
	rng   *rand.Rand
	seed  uint64
	runID string

	tick    uint64
	running bool

	score        int
	level        int
	rainbowBalls int
	rainbowReady bool

	player       *Player
	enemies      []*Enemy
	bullets      []*Bullet
	enemyBullets []*Bullet
	items        []*Item
	effects      []*Effect

	registry *enemyRegistry
	spawner  *Spawner
	grid     *SpatialGrid
	gridOK   bool
	queryBuf []int

	bus EventBus
}

// NewGame creates a running game. A zero cfg.Seed picks a random seed; a nil
// logger discards output.
func NewGame(cfg Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	runID := GenerateRunID()

	g := &Game{
		cfg:      cfg,
		log:      logger.With("run", runID),
		pcg:      pcg,
		rng:      rand.New(pcg),
		seed:     seed,
		runID:    runID,
		running:  true,
		level:    1,
		player:   NewPlayer(cfg.Width/2, cfg.Height-playerStartOffset, cfg.Player),
		registry: newEnemyRegistry(),
		spawner:  NewSpawner(cfg.Spawner),
		grid:     NewSpatialGrid(cfg.Width, cfg.Height),
	}
	g.registerCoreHandlers()
	g.log.Info("game started", "seed", seed, "width", cfg.Width, "height", cfg.Height)
	return g
}

// Subscribe adds a handler to an event channel
func (g *Game) Subscribe(kind EventKind, h Handler) {
	g.bus.Subscribe(kind, h)
}

// Update runs one tick. It does nothing once the player has been destroyed.
func (g *Game) Update() {
	if !g.running {
		return
	}
	g.tick++
	g.gridOK = false

	if e := g.spawner.Update(g.level, len(g.enemies), g.cfg.Width, g.rng); e != nil {
		g.addEnemy(e)
	}

	if g.player.Update() {
		for _, b := range g.player.Volley(g.nearestEnemy()) {
			g.addPlayerBullet(b)
		}
	}

	for _, e := range g.enemies {
		hp := e.HP
		if e.Update(g.level) {
			g.enemyBullets = append(g.enemyBullets, NewEnemyBullet(e, g.level))
		}
		if lost := hp - e.HP; lost > 0 {
			g.addEffect(NewHitEffect(e.X, e.Y, lost, BurnHitColor))
		}
	}

	for _, b := range g.bullets {
		b.Update(g.registry)
	}
	for _, b := range g.enemyBullets {
		b.Update(nil)
	}
	for _, it := range g.items {
		it.Update()
	}
	for _, ef := range g.effects {
		ef.Update()
	}

	g.resolveCollisions()
	g.checkDeaths()
	g.prune()
}

func (g *Game) addEnemy(e *Enemy) {
	g.registry.Acquire(e)
	g.enemies = append(g.enemies, e)
	g.gridOK = false
}

func (g *Game) addPlayerBullet(b *Bullet) {
	b.Life = g.cfg.BulletLifeTicks
	g.bullets = append(g.bullets, b)
}

func (g *Game) addEffect(ef *Effect) {
	g.effects = append(g.effects, ef)
}

// nearestEnemy returns the handle of the closest live enemy, or a zero handle
func (g *Game) nearestEnemy() EnemyHandle {
	var best EnemyHandle
	bestDist := math.Inf(1)
	for _, e := range g.enemies {
		if e.IsDead() {
			continue
		}
		if d := DistanceSq(g.player.X, g.player.Y, e.X, e.Y); d < bestDist {
			bestDist = d
			best = e.Handle
		}
	}
	return best
}

// addScore awards points and advances the level when a threshold is crossed
func (g *Game) addScore(points int) {
	if points == 0 {
		return
	}
	g.score += points
	g.Emit(ScoreChangedEvent{Score: g.score})

	level := 1 + g.score/g.cfg.LevelUpScore
	if level > g.level {
		g.level = level
		g.log.Info("level up", "level", level, "score", g.score, "tick", g.tick)
		g.Emit(LevelChangedEvent{Level: level})
	}
}

// prune drops dead, spent, collected and off-screen entities, keeping the
// order of the survivors
func (g *Game) prune() {
	height := g.cfg.Height

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.IsDead() || e.IsOffScreen(height) {
			g.registry.Release(e.Handle)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.enemies[len(kept):])
	g.enemies = kept
	g.gridOK = false

	g.bullets = slices.DeleteFunc(g.bullets, func(b *Bullet) bool {
		return b.Spent || b.IsOffScreen(height)
	})
	g.enemyBullets = slices.DeleteFunc(g.enemyBullets, func(b *Bullet) bool {
		return b.Spent || b.IsOffScreen(height)
	})
	g.items = slices.DeleteFunc(g.items, func(it *Item) bool {
		return it.Collected || it.IsOffScreen(height)
	})
	g.effects = slices.DeleteFunc(g.effects, func(ef *Effect) bool {
		return ef.Timer <= 0
	})
}

func (g *Game) RunID() string { return g.runID }
func (g *Game) Seed() uint64 { return g.seed }
func (g *Game) Tick() uint64 { return g.tick }
func (g *Game) Running() bool { return g.running }
func (g *Game) Score() int { return g.score }
func (g *Game) Level() int { return g.level }
func (g *Game) Lives() int { return g.player.Lives }
func (g *Game) Weapons() Loadout { return g.player.Weapons }
func (g *Game) RainbowBalls() int { return g.rainbowBalls }
func (g *Game) RainbowReady() bool { return g.rainbowReady }
func (g *Game) HandlerFailures() int { return g.bus.Failures() }
func (g *Game) Config() Config { return g.cfg }

// Player returns the ship. Callers must not keep it across a Restore.
func (g *Game) Player() *Player { return g.player }

// EnemyCount is the number of enemies currently on the field
func (g *Game) EnemyCount() int { return len(g.enemies) }

// SetTarget forwards a pointer position to the ship
func (g *Game) SetTarget(x, y float64) {
	g.player.SetTarget(Clamp(x, 0, g.cfg.Width), Clamp(y, 0, g.cfg.Height))
}
