package main

import "math/rand/v2"

// kindUnlocks lists the level at which each regular kind joins the pool
var kindUnlocks = [...]struct {
	kind  EnemyKind
	level int
}{
	{KindGreen, 1},
	{KindYellow, 2},
	{KindRed, 3},
	{KindRainbow, 4},
}

// Spawner releases enemies on a fixed tick interval while under the cap
type Spawner struct {
	cfg        SpawnerConfig
	SinceSpawn int // ticks since the last spawn
}

// NewSpawner starts primed so the first tick spawns
func NewSpawner(cfg SpawnerConfig) *Spawner {
	return &Spawner{cfg: cfg, SinceSpawn: cfg.IntervalTicks}
}

// Update advances the spawn timer and returns a new enemy when one is due.
// population is the current enemy count.
func (s *Spawner) Update(level, population int, width float64, rng *rand.Rand) *Enemy {
	s.SinceSpawn++
	if s.SinceSpawn <= s.cfg.IntervalTicks || population >= s.cfg.MaxEnemies {
		return nil
	}
	s.SinceSpawn = 0

	kind := s.pickKind(level, rng)
	x := s.cfg.Margin + rng.Float64()*(width-2*s.cfg.Margin)
	return NewEnemy(x, s.cfg.SpawnY, kind, level, rng)
}

// Pool returns the kinds unlocked at level, easiest first
func (s *Spawner) Pool(level int) []EnemyKind {
	pool := make([]EnemyKind, 0, len(kindUnlocks))
	for _, u := range kindUnlocks {
		if level >= u.level {
			pool = append(pool, u.kind)
		}
	}
	return pool
}

func (s *Spawner) pickKind(level int, rng *rand.Rand) EnemyKind {
	if s.cfg.BossEveryLevels > 0 && level%s.cfg.BossEveryLevels == 0 && rng.Float64() < s.cfg.BossChance {
		return KindBoss
	}
	pool := s.Pool(level)
	if len(pool) == 0 {
		return KindGreen
	}
	return pool[rng.IntN(len(pool))]
}
