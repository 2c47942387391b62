package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vmihailenco/msgpack/v5"
)

const snapshotVersion = 1

var (
	errStaleHandle     = errors.New("enemy handle does not match registry")
	errSnapshotVersion = errors.New("unsupported snapshot version")
	errSnapshotPlayer  = errors.New("snapshot has no player")
)

// Snapshot is the full simulation state at a tick boundary. Event
// subscribers other than the core handlers are not part of it.
type Snapshot struct {
	Version int    `msgpack:"v"`
	Config  Config `msgpack:"cfg"`
	RunID   string `msgpack:"run"`
	Seed    uint64 `msgpack:"seed"`
	RNG     []byte `msgpack:"rng"`

	Tick    uint64 `msgpack:"tick"`
	Running bool   `msgpack:"running"`

	Score        int  `msgpack:"score"`
	Level        int  `msgpack:"level"`
	RainbowBalls int  `msgpack:"balls"`
	RainbowReady bool `msgpack:"ready"`
	SinceSpawn   int  `msgpack:"since"`

	Player       *Player   `msgpack:"player"`
	Enemies      []*Enemy  `msgpack:"enemies,omitempty"`
	Bullets      []*Bullet `msgpack:"bullets,omitempty"`
	EnemyBullets []*Bullet `msgpack:"ebullets,omitempty"`
	Items        []*Item   `msgpack:"items,omitempty"`
	Effects      []*Effect `msgpack:"effects,omitempty"`

	Registry registryState `msgpack:"registry"`
}

// Snapshot encodes the current state with msgpack
func (g *Game) Snapshot() ([]byte, error) {
	rng, err := g.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("snapshot rng: %w", err)
	}
	snap := Snapshot{
		Version:      snapshotVersion,
		Config:       g.cfg,
		RunID:        g.runID,
		Seed:         g.seed,
		RNG:          rng,
		Tick:         g.tick,
		Running:      g.running,
		Score:        g.score,
		Level:        g.level,
		RainbowBalls: g.rainbowBalls,
		RainbowReady: g.rainbowReady,
		SinceSpawn:   g.spawner.SinceSpawn,
		Player:       g.player,
		Enemies:      g.enemies,
		Bullets:      g.bullets,
		EnemyBullets: g.enemyBullets,
		Items:        g.items,
		Effects:      g.effects,
		Registry:     g.registry.state(),
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot encode: %w", err)
	}
	return data, nil
}

// Restore rebuilds a game from Snapshot output. Ticking the result produces
// the same states as ticking the original.
func Restore(data []byte, logger *slog.Logger) (*Game, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", errSnapshotVersion, snap.Version)
	}
	if snap.Player == nil {
		return nil, errSnapshotPlayer
	}

	pcg := &rand.PCG{}
	if err := pcg.UnmarshalBinary(snap.RNG); err != nil {
		return nil, fmt.Errorf("snapshot rng: %w", err)
	}
	registry, err := restoreRegistry(snap.Registry, snap.Enemies)
	if err != nil {
		return nil, fmt.Errorf("snapshot registry: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	spawner := NewSpawner(snap.Config.Spawner)
	spawner.SinceSpawn = snap.SinceSpawn

	g := &Game{
		cfg:          snap.Config,
		log:          logger.With("run", snap.RunID),
		pcg:          pcg,
		rng:          rand.New(pcg),
		seed:         snap.Seed,
		runID:        snap.RunID,
		tick:         snap.Tick,
		running:      snap.Running,
		score:        snap.Score,
		level:        snap.Level,
		rainbowBalls: snap.RainbowBalls,
		rainbowReady: snap.RainbowReady,
		player:       snap.Player,
		enemies:      snap.Enemies,
		bullets:      snap.Bullets,
		enemyBullets: snap.EnemyBullets,
		items:        snap.Items,
		effects:      snap.Effects,
		registry:     registry,
		spawner:      spawner,
		grid:         NewSpatialGrid(snap.Config.Width, snap.Config.Height),
	}
	g.registerCoreHandlers()
	g.log.Info("game restored", "tick", g.tick, "enemies", len(g.enemies))
	return g, nil
}
