package main

import "strconv"

// EffectKind is the visual effect variant
type EffectKind int

const (
	EffectHit       EffectKind = 0
	EffectExplosion EffectKind = 1
	EffectSparkle   EffectKind = 2
)

const (
	HitEffectTicks       = 30
	ExplosionEffectTicks = 60
	SparkleEffectTicks   = 45

	hitEffectRise     = 2.0
	sparkleEffectRise = 3.0
	explosionBaseSize = 48.0
	explosionGrowth   = 2.0 // size added per elapsed tick

	HitColor       = "#ffff00"
	BurnHitColor   = "#ff4500"
	PlayerHitColor = "#ff0000"
)

// Effect is purely visual and never touches gameplay state
type Effect struct {
	Kind  EffectKind `msgpack:"k"`
	X     float64    `msgpack:"x"`
	Y     float64    `msgpack:"y"`
	Text  string     `msgpack:"t"`
	Color string     `msgpack:"c"`
	Timer int        `msgpack:"tm"`
}

// NewHitEffect shows a rising damage number
func NewHitEffect(x, y float64, damage int, color string) *Effect {
	return &Effect{
		Kind:  EffectHit,
		X:     x,
		Y:     y,
		Text:  "-" + strconv.Itoa(damage),
		Color: color,
		Timer: HitEffectTicks,
	}
}

// NewExplosionEffect shows a growing blast. The player's is a skull.
func NewExplosionEffect(x, y float64, player bool) *Effect {
	glyph := "💥"
	if player {
		glyph = "💀"
	}
	return &Effect{
		Kind:  EffectExplosion,
		X:     x,
		Y:     y,
		Text:  glyph,
		Color: "#ffffff",
		Timer: ExplosionEffectTicks,
	}
}

// NewSparkleEffect marks a collected item
func NewSparkleEffect(x, y float64) *Effect {
	return &Effect{
		Kind:  EffectSparkle,
		X:     x,
		Y:     y,
		Text:  "✨",
		Color: HitColor,
		Timer: SparkleEffectTicks,
	}
}

// Update advances the effect, returns false when expired
func (ef *Effect) Update() bool {
	ef.Timer--
	switch ef.Kind {
	case EffectHit:
		ef.Y -= hitEffectRise
	case EffectSparkle:
		ef.Y -= sparkleEffectRise
	case EffectExplosion:
	}
	return ef.Timer > 0
}

// DrawSize is the text size for the current frame
func (ef *Effect) DrawSize() float64 {
	switch ef.Kind {
	case EffectHit:
		return 16
	case EffectExplosion:
		return explosionBaseSize + float64(ExplosionEffectTicks-ef.Timer)*explosionGrowth
	case EffectSparkle:
		return 24
	}
	return 16
}
