package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TickRate is the fixed simulation rate. Every timer in the game counts ticks.
const TickRate = 60

// Config holds every tuning value of a run
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Seed   uint64  `yaml:"seed"` // 0 = random

	LogLevel string `yaml:"log_level"`

	Player  PlayerConfig  `yaml:"player"`
	Spawner SpawnerConfig `yaml:"spawner"`

	BulletLifeTicks int     `yaml:"bullet_life_ticks"`
	DropChance      float64 `yaml:"drop_chance"`
	LevelUpScore    int     `yaml:"level_up_score"`
}

// PlayerConfig holds the player ship settings
type PlayerConfig struct {
	Lives             int     `yaml:"lives"`
	Size              float64 `yaml:"size"`
	Follow            float64 `yaml:"follow"` // fraction of the distance to target covered per tick
	FireIntervalTicks int     `yaml:"fire_interval_ticks"`
	InvincibleTicks   int     `yaml:"invincible_ticks"`
}

// SpawnerConfig holds the enemy wave settings
type SpawnerConfig struct {
	IntervalTicks   int     `yaml:"interval_ticks"`
	MaxEnemies      int     `yaml:"max_enemies"`
	Margin          float64 `yaml:"margin"`
	SpawnY          float64 `yaml:"spawn_y"`
	BossEveryLevels int     `yaml:"boss_every_levels"`
	BossChance      float64 `yaml:"boss_chance"`
}

// DefaultConfig returns the stock arcade settings
func DefaultConfig() Config {
	return Config{
		Width:    600,
		Height:   900,
		LogLevel: "info",
		Player: PlayerConfig{
			Lives:             3,
			Size:              48,
			Follow:            0.2,
			FireIntervalTicks: 11, // ~180ms
			InvincibleTicks:   180,
		},
		Spawner: SpawnerConfig{
			IntervalTicks:   54, // ~900ms
			MaxEnemies:      20,
			Margin:          40,
			SpawnY:          -40,
			BossEveryLevels: 10,
			BossChance:      0.3,
		},
		BulletLifeTicks: 600,
		DropChance:      0.1,
		LevelUpScore:    1000,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 2*c.Spawner.Margin {
		errs = append(errs, fmt.Errorf("width %.0f must exceed twice the spawn margin %.0f", c.Width, c.Spawner.Margin))
	}
	if c.Height <= 0 {
		errs = append(errs, errors.New("height must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if c.Player.Follow <= 0 || c.Player.Follow > 1 {
		errs = append(errs, errors.New("player.follow must be in (0, 1]"))
	}
	if c.Player.FireIntervalTicks <= 0 {
		errs = append(errs, errors.New("player.fire_interval_ticks must be positive"))
	}
	if c.Spawner.IntervalTicks < 0 {
		errs = append(errs, errors.New("spawner.interval_ticks must not be negative"))
	}
	if c.Spawner.MaxEnemies < 0 {
		errs = append(errs, errors.New("spawner.max_enemies must not be negative"))
	}
	if c.Spawner.BossEveryLevels <= 0 {
		errs = append(errs, errors.New("spawner.boss_every_levels must be positive"))
	}
	if c.DropChance < 0 || c.DropChance > 1 {
		errs = append(errs, errors.New("drop_chance must be in [0, 1]"))
	}
	if c.LevelUpScore <= 0 {
		errs = append(errs, errors.New("level_up_score must be positive"))
	}
	return errors.Join(errs...)
}
