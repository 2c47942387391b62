package main

// WeaponKind indexes the player's loadout
type WeaponKind int

const (
	WeaponSpread  WeaponKind = 0
	WeaponLaser   WeaponKind = 1
	WeaponIce     WeaponKind = 2
	WeaponFire    WeaponKind = 3
	WeaponBomb    WeaponKind = 4
	WeaponMissile WeaponKind = 5

	weaponCount = 6
)

const (
	MaxWeaponLevel = 3
	PlayerGlyph    = "🚀"

	// lateral offsets of the side guns
	IceGunOffset     = 20.0
	FireGunOffset    = -20.0
	BombGunOffset    = 10.0
	MissileGunOffset = -10.0
)

func (w WeaponKind) String() string {
	return ItemKind(w).String()
}

// Loadout holds a level 0-3 per weapon, 0 = not owned
type Loadout [weaponCount]int

// Upgrade raises a weapon one level up to MaxWeaponLevel
func (l *Loadout) Upgrade(w WeaponKind) {
	if w < 0 || int(w) >= weaponCount {
		return
	}
	l[w] = min(MaxWeaponLevel, l[w]+1)
}

// Player is the ship. Timers are in ticks.
type Player struct {
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	TargetX float64 `msgpack:"tx"`
	TargetY float64 `msgpack:"ty"`
	Size    float64 `msgpack:"s"`
	Follow  float64 `msgpack:"f"`

	Lives           int  `msgpack:"l"`
	MaxLives        int  `msgpack:"ml"`
	Invincible      bool `msgpack:"inv"`
	InvincibleTimer int  `msgpack:"invt"`
	InvincibleTicks int  `msgpack:"invd"`

	Weapons      Loadout `msgpack:"w"`
	FireTimer    int     `msgpack:"ft"`
	FireInterval int     `msgpack:"fi"`

	DestroyFired bool `msgpack:"df"`
}

// NewPlayer places the ship at x, y with the configured stats
func NewPlayer(x, y float64, cfg PlayerConfig) *Player {
	return &Player{
		X:               x,
		Y:               y,
		TargetX:         x,
		TargetY:         y,
		Size:            cfg.Size,
		Follow:          cfg.Follow,
		Lives:           cfg.Lives,
		MaxLives:        cfg.Lives,
		InvincibleTicks: cfg.InvincibleTicks,
		FireInterval:    cfg.FireIntervalTicks,
	}
}

// SetTarget moves the point the ship eases toward
func (p *Player) SetTarget(x, y float64) {
	p.TargetX = x
	p.TargetY = y
}

// Update eases toward the target, counts down invincibility and returns true
// when the auto-fire timer is due
func (p *Player) Update() bool {
	p.X += (p.TargetX - p.X) * p.Follow
	p.Y += (p.TargetY - p.Y) * p.Follow

	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}

	if !p.IsAlive() {
		return false
	}
	p.FireTimer++
	if p.FireTimer >= p.FireInterval {
		p.FireTimer = 0
		return true
	}
	return false
}

// TakeDamage costs a life and grants invincibility if any are left.
// Returns false when the hit was ignored.
func (p *Player) TakeDamage(dmg int) bool {
	if p.Invincible || dmg <= 0 {
		return false
	}
	p.Lives = max(0, p.Lives-dmg)
	if p.Lives > 0 {
		p.Invincible = true
		p.InvincibleTimer = p.InvincibleTicks
	}
	return true
}

// Volley builds one auto-fire salvo for the current loadout. target is the
// nearest live enemy; the missile is skipped when it is not valid.
func (p *Player) Volley(target EnemyHandle) []*Bullet {
	x := p.X
	y := p.Y - p.Size/2
	w := p.Weapons

	var bullets []*Bullet
	if w[WeaponSpread] > 0 {
		bullets = append(bullets, NewSpreadBullets(x, y, w[WeaponSpread])...)
	} else {
		bullets = append(bullets, NewBullet(x, y, 0, -ShotSpeed, 1))
	}
	if lv := w[WeaponLaser]; lv > 0 {
		bullets = append(bullets, NewLaserBullet(x, y, -LaserSpeed, 1, lv))
	}
	if lv := w[WeaponIce]; lv > 0 {
		bullets = append(bullets, NewIceBullet(x+IceGunOffset, y, -ShotSpeed, 1, lv))
	}
	if lv := w[WeaponFire]; lv > 0 {
		bullets = append(bullets, NewFireBullet(x+FireGunOffset, y, -ShotSpeed, 1, lv))
	}
	if lv := w[WeaponBomb]; lv > 0 {
		bullets = append(bullets, NewBombBullet(x+BombGunOffset, y, -BombSpeed, 1, lv))
	}
	if lv := w[WeaponMissile]; lv > 0 && target.Valid() {
		bullets = append(bullets, NewMissileBullet(x+MissileGunOffset, y, -MissileSpeed, MissileDamage, lv, target))
	}
	return bullets
}

func (p *Player) IsAlive() bool {
	return p.Lives > 0
}

func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

// Visible implements the invincibility blink, six ticks on and six off
func (p *Player) Visible(tick uint64) bool {
	if p.IsDead() {
		return false
	}
	return !p.Invincible || (tick/6)%2 == 0
}
