package main

import "math/rand/v2"

const (
	EnemyBaseSize      = 32.0
	EnemySizePerHP     = 4.0
	EnemyScreenMargin  = 60.0
	EnemyFireBase      = 120 // ticks
	EnemyFireJitter    = 100
	EnemyFireLevelStep = 5 // ticks shaved off the interval per level
	EnemyHPJitter      = 5
	EnemySpeedJitter   = 0.5
	EnemySpeedPerLevel = 0.2
)

// Enemy is a descending emoji. Timers are in ticks.
type Enemy struct {
	Handle EnemyHandle `msgpack:"h"`
	X      float64     `msgpack:"x"`
	Y      float64     `msgpack:"y"`
	Kind   EnemyKind   `msgpack:"k"`

	HP            int     `msgpack:"hp"`
	MaxHP         int     `msgpack:"mhp"`
	Speed         float64 `msgpack:"sp"`
	OriginalSpeed float64 `msgpack:"osp"`
	Size          float64 `msgpack:"sz"`

	CanFire      bool `msgpack:"cf"`
	FireTimer    int  `msgpack:"ft"`
	FireInterval int  `msgpack:"fi"`

	Frozen      bool `msgpack:"fr"`
	FrozenTimer int  `msgpack:"frt"`

	Burning      bool `msgpack:"bu"`
	BurnTimer    int  `msgpack:"but"`
	BurnDuration int  `msgpack:"bud"`
	BurnDamage   int  `msgpack:"bdm"`

	DestroyFired bool `msgpack:"df"`
}

// NewEnemy rolls stats for a kind at the given level. The handle is assigned
// by the registry when the game adds the enemy.
func NewEnemy(x, y float64, kind EnemyKind, level int, rng *rand.Rand) *Enemy {
	def := GetKindDef(kind)
	if level < 1 {
		level = 1
	}

	hp := 1 + rng.IntN(EnemyHPJitter) + (level - 1) + def.HPBonus
	speed := 1 + rng.Float64()*EnemySpeedJitter + float64(level-1)*EnemySpeedPerLevel + def.SpeedBonus

	return &Enemy{
		X:             x,
		Y:             y,
		Kind:          kind,
		HP:            hp,
		MaxHP:         hp,
		Speed:         speed,
		OriginalSpeed: speed,
		Size:          EnemyBaseSize + float64(hp)*EnemySizePerHP,
		CanFire:       def.CanFire,
		FireInterval:  EnemyFireBase + rng.IntN(EnemyFireJitter),
	}
}

// Update runs status effects, moves down and returns true when it wants to fire
func (e *Enemy) Update(level int) bool {
	if e.Frozen {
		e.FrozenTimer--
		if e.FrozenTimer <= 0 {
			e.Frozen = false
			e.FrozenTimer = 0
			e.Speed = e.OriginalSpeed
		}
	}

	if e.Burning {
		e.BurnTimer--
		elapsed := e.BurnDuration - e.BurnTimer
		if elapsed > 0 && elapsed%TickRate == 0 {
			e.TakeDamage(e.BurnDamage)
		}
		if e.BurnTimer <= 0 {
			e.Burning = false
			e.BurnTimer = 0
		}
	}

	e.Y += e.Speed

	if !e.CanFire || e.Frozen || e.IsDead() {
		return false
	}
	e.FireTimer++
	if e.FireTimer > e.FireInterval-EnemyFireLevelStep*level {
		e.FireTimer = 0
		return true
	}
	return false
}

// TakeDamage reduces HP, never below zero
func (e *Enemy) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.HP = max(0, e.HP-amount)
}

// ApplyFreeze stops the enemy for at least ticks. A longer running freeze is kept.
func (e *Enemy) ApplyFreeze(ticks int) {
	if ticks <= 0 {
		return
	}
	e.Frozen = true
	e.Speed = 0
	e.FrozenTimer = max(e.FrozenTimer, ticks)
}

// ApplyBurn (re)starts a burn that deals damage once per second
func (e *Enemy) ApplyBurn(ticks, damage int) {
	if ticks <= 0 {
		return
	}
	e.Burning = true
	e.BurnTimer = ticks
	e.BurnDuration = ticks
	e.BurnDamage = damage
}

func (e *Enemy) IsDead() bool {
	return e.HP <= 0
}

// IsOffScreen reports whether the enemy has left through the bottom
func (e *Enemy) IsOffScreen(height float64) bool {
	return e.Y > height+EnemyScreenMargin
}

// HPFraction is the health bar fill in [0, 1]
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return Clamp(float64(e.HP)/float64(e.MaxHP), 0, 1)
}
