package main

import "math"

// BulletKind is the projectile variant
type BulletKind int

const (
	BulletNormal  BulletKind = 0
	BulletLaser   BulletKind = 1
	BulletIce     BulletKind = 2
	BulletFire    BulletKind = 3
	BulletBomb    BulletKind = 4
	BulletMissile BulletKind = 5
)

var bulletKindNames = [...]string{"normal", "laser", "ice", "fire", "bomb", "missile"}

func (k BulletKind) String() string {
	if k < 0 || int(k) >= len(bulletKindNames) {
		return "unknown"
	}
	return bulletKindNames[k]
}

// Owner says which side fired a bullet
type Owner int

const (
	OwnerPlayer Owner = 0
	OwnerEnemy  Owner = 1
)

const (
	PlayerBulletSize   = 16.0
	EnemyBulletSize    = 12.0
	BulletScreenMargin = 30.0 // vertical slack beyond the playfield

	ShotSpeed    = 8.0
	LaserSpeed   = 10.0
	BombSpeed    = 6.0
	MissileSpeed = 4.0

	LaserSizePerLevel   = 4.0
	FreezeTicksBase     = 30
	FreezeTicksPerLevel = 30
	BurnTicks           = 2 * TickRate
	BombRadiusBase      = 30.0
	BombRadiusPerLevel  = 15.0
	MissileTurnPerLevel = 15.0 // degrees
	MissileDamage       = 2

	SpreadAngleStep = math.Pi / 6
	SpreadLateral   = 3.0

	StarBurstRays   = 8
	StarBurstSpeed  = 6.0
	StarBurstDamage = 5
	StarBurstLevel  = 3
)

var spreadCounts = [3]int{3, 5, 8}

// Bullet is a projectile of any variant. Variant-only fields stay zero for
// the other kinds.
type Bullet struct {
	Kind   BulletKind `msgpack:"k"`
	Owner  Owner      `msgpack:"o"`
	X      float64    `msgpack:"x"`
	Y      float64    `msgpack:"y"`
	VX     float64    `msgpack:"vx"`
	VY     float64    `msgpack:"vy"`
	Damage int        `msgpack:"d"`
	Size   float64    `msgpack:"s"`
	Level  int        `msgpack:"lv"`
	Life   int        `msgpack:"l"` // ticks left, 0 = unlimited
	Spent  bool       `msgpack:"sp"`

	// laser
	Penetration int         `msgpack:"pen,omitempty"`
	LastHit     EnemyHandle `msgpack:"lh,omitempty"` // pierced enemy, skipped while still overlapping
	// ice
	FreezeTicks int `msgpack:"frz,omitempty"`
	// fire
	BurnTicks  int `msgpack:"brn,omitempty"`
	BurnDamage int `msgpack:"bd,omitempty"`
	// bomb
	Radius   float64 `msgpack:"r,omitempty"`
	Exploded bool    `msgpack:"ex,omitempty"`
	// missile
	Target  EnemyHandle `msgpack:"t,omitempty"`
	Homed   bool        `msgpack:"h,omitempty"`
	MaxTurn float64     `msgpack:"mt,omitempty"` // degrees
}

// NewBullet creates a plain player shot
func NewBullet(x, y, vx, vy float64, damage int) *Bullet {
	return &Bullet{
		Kind:   BulletNormal,
		Owner:  OwnerPlayer,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Size:   PlayerBulletSize,
	}
}

// NewEnemyBullet creates a downward shot from the bottom edge of e
func NewEnemyBullet(e *Enemy, level int) *Bullet {
	return &Bullet{
		Kind:   BulletNormal,
		Owner:  OwnerEnemy,
		X:      e.X,
		Y:      e.Y + e.Size/2,
		VY:     3 + float64(level)*0.2,
		Damage: 1,
		Size:   EnemyBulletSize,
	}
}

// NewLaserBullet pierces Penetration enemies and has a wider hitbox per level
func NewLaserBullet(x, y, vy float64, damage, level int) *Bullet {
	b := NewBullet(x, y, 0, vy, damage+level)
	b.Kind = BulletLaser
	b.Level = level
	b.Penetration = level
	b.Size = PlayerBulletSize + float64(level)*LaserSizePerLevel
	return b
}

// NewIceBullet freezes what it hits
func NewIceBullet(x, y, vy float64, damage, level int) *Bullet {
	b := NewBullet(x, y, 0, vy, damage)
	b.Kind = BulletIce
	b.Level = level
	b.FreezeTicks = FreezeTicksBase + level*FreezeTicksPerLevel
	return b
}

// NewFireBullet sets what it hits on fire
func NewFireBullet(x, y, vy float64, damage, level int) *Bullet {
	b := NewBullet(x, y, 0, vy, damage)
	b.Kind = BulletFire
	b.Level = level
	b.BurnTicks = BurnTicks
	b.BurnDamage = level
	return b
}

// NewBombBullet explodes on its first hit
func NewBombBullet(x, y, vy float64, damage, level int) *Bullet {
	b := NewBullet(x, y, 0, vy, damage+level)
	b.Kind = BulletBomb
	b.Level = level
	b.Radius = BombRadiusBase + float64(level)*BombRadiusPerLevel
	return b
}

// NewMissileBullet turns toward target once, by at most MaxTurn degrees
func NewMissileBullet(x, y, vy float64, damage, level int, target EnemyHandle) *Bullet {
	b := NewBullet(x, y, 0, vy, damage)
	b.Kind = BulletMissile
	b.Level = level
	b.Target = target
	b.MaxTurn = float64(level) * MissileTurnPerLevel
	return b
}

// NewSpreadBullets fans {3,5,8} shots around straight up for level 1-3
func NewSpreadBullets(x, y float64, level int) []*Bullet {
	count := spreadCounts[0]
	if level >= 1 && level <= len(spreadCounts) {
		count = spreadCounts[level-1]
	}
	bullets := make([]*Bullet, 0, count)
	for i := 0; i < count; i++ {
		angle := SpreadAngleStep * (float64(i) - float64(count)/2 + 0.5)
		bullets = append(bullets, NewBullet(x, y, math.Sin(angle)*SpreadLateral, -ShotSpeed, 1))
	}
	return bullets
}

// NewStarBurst fires one top-tier laser along each of 8 compass directions
func NewStarBurst(x, y float64) []*Bullet {
	bullets := make([]*Bullet, 0, StarBurstRays)
	for i := 0; i < StarBurstRays; i++ {
		angle := 2 * math.Pi * float64(i) / StarBurstRays
		b := NewLaserBullet(x, y, 0, StarBurstDamage, StarBurstLevel)
		b.VX = math.Cos(angle) * StarBurstSpeed
		b.VY = math.Sin(angle) * StarBurstSpeed
		bullets = append(bullets, b)
	}
	return bullets
}

// Update moves the bullet one tick. Missiles resolve their target through reg.
func (b *Bullet) Update(reg *enemyRegistry) {
	if b.Spent {
		return
	}
	if b.Kind == BulletMissile {
		b.home(reg)
	}
	b.X += b.VX
	b.Y += b.VY

	if b.Life > 0 {
		b.Life--
		if b.Life == 0 {
			b.Spent = true
		}
	}
}

// home re-aims the missile the first time its target is alive
func (b *Bullet) home(reg *enemyRegistry) {
	if b.Homed || !b.Target.Valid() || reg == nil {
		return
	}
	target, ok := reg.Resolve(b.Target)
	if !ok || target.IsDead() {
		return
	}
	dx := target.X - b.X
	dy := target.Y - b.Y
	if dx == 0 && dy == 0 {
		return
	}

	speed := math.Hypot(b.VX, b.VY)
	current := b.Heading()
	maxTurn := degToRad(b.MaxTurn)
	diff := Clamp(NormalizeAngle(math.Atan2(dy, dx)-current), -maxTurn, maxTurn)
	heading := current + diff

	b.VX = math.Cos(heading) * speed
	b.VY = math.Sin(heading) * speed
	b.Homed = true
}

// Heading returns the direction of travel in radians
func (b *Bullet) Heading() float64 {
	return math.Atan2(b.VY, b.VX)
}

// IsOffScreen checks the vertical bounds only
func (b *Bullet) IsOffScreen(height float64) bool {
	return b.Y < -BulletScreenMargin || b.Y > height+BulletScreenMargin
}

// CollidesWith reports whether the bullet overlaps a body of the given size
func (b *Bullet) CollidesWith(x, y, size float64) bool {
	return CheckCollision(b.X, b.Y, b.Size, x, y, size)
}

// ConsumePenetration spends one pierce. It never goes below zero.
func (b *Bullet) ConsumePenetration() {
	if b.Penetration > 0 {
		b.Penetration--
	}
}

// Remove marks the bullet for pruning
func (b *Bullet) Remove() {
	b.Spent = true
}
