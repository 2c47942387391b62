package main

// EnemyKind identifies an enemy tier, ordered easy to hard
type EnemyKind int

const (
	KindGreen   EnemyKind = 0
	KindYellow  EnemyKind = 1
	KindRed     EnemyKind = 2
	KindRainbow EnemyKind = 3
	KindBoss    EnemyKind = 4
)

// EnemyKindDef holds the per-kind stat bonuses and presentation
type EnemyKindDef struct {
	Name       string
	HPBonus    int
	SpeedBonus float64
	CanFire    bool
	HitScore   int // awarded per enemyHit
	Glyph      string
	Color      string
}

var EnemyKinds = [5]EnemyKindDef{
	// Green: fodder, never fires
	{Name: "green", HPBonus: 0, SpeedBonus: 0, CanFire: false, HitScore: 10, Glyph: "😂", Color: "#00ff00"},
	{Name: "yellow", HPBonus: 2, SpeedBonus: 0.3, CanFire: true, HitScore: 20, Glyph: "😆", Color: "#ffff00"},
	{Name: "red", HPBonus: 4, SpeedBonus: 0.6, CanFire: true, HitScore: 30, Glyph: "🤣", Color: "#ff0000"},
	// Rainbow: always drops a rainbow ball when it drops anything
	{Name: "rainbow", HPBonus: 8, SpeedBonus: 1.0, CanFire: true, HitScore: 50, Glyph: "😹", Color: "#00ffff"},
	// Boss: only forced on every Nth level
	{Name: "boss", HPBonus: 20, SpeedBonus: 0.5, CanFire: true, HitScore: 100, Glyph: "😈", Color: "#ffffff"},
}

// GetKindDef returns the definition for an enemy kind
func GetKindDef(kind EnemyKind) EnemyKindDef {
	if kind < 0 || int(kind) >= len(EnemyKinds) {
		return EnemyKinds[KindGreen]
	}
	return EnemyKinds[kind]
}

func (k EnemyKind) String() string {
	return GetKindDef(k).Name
}
