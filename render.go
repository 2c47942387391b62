package main

import "strconv"

//go:generate go tool mockgen -source=render.go -destination=mock_renderer_test.go -package=main

// Align is the horizontal anchor of drawn text
type Align int

const (
	AlignCenter Align = 0
	AlignLeft   Align = 1
	AlignRight  Align = 2
)

// Renderer is the immediate-mode drawing surface. Coordinates are playfield
// units; the implementation does its own scaling.
type Renderer interface {
	DrawText(content string, x, y, size float64, color string, align Align)
	DrawProgressBar(x, y, w, h, fraction float64, color string)
}

const (
	shotColor       = "#00ffff"
	enemyShotColor  = "#ff0000"
	frozenColor     = "#87ceeb"
	burningColor    = "#ff4500"
	white           = "#ffffff"
	laserBeamLength = 40.0
	shotGlyphSize   = 12.0
	specialShotSize = 24.0
	enemyShotSize   = 18.0
	statusIconSize  = 16.0
	hpTextSize      = 12.0
	hpBarHeight     = 6.0
	hpBarGap        = 8.0
)

// Render draws one frame. It only reads state.
func (g *Game) Render(r Renderer) {
	p := g.player
	if p.Visible(g.tick) {
		r.DrawText(PlayerGlyph, p.X, p.Y, p.Size, white, AlignCenter)
	}
	for _, b := range g.bullets {
		drawPlayerBullet(r, b)
	}
	for _, e := range g.enemies {
		drawEnemy(r, e)
	}
	for _, b := range g.enemyBullets {
		r.DrawText("🔴", b.X, b.Y, enemyShotSize, enemyShotColor, AlignCenter)
	}
	for _, it := range g.items {
		r.DrawText(it.Kind.Glyph(), it.X, it.Y, it.Size, white, AlignCenter)
	}
	for _, ef := range g.effects {
		r.DrawText(ef.Text, ef.X, ef.Y, ef.DrawSize(), ef.Color, AlignCenter)
	}
}

func drawPlayerBullet(r Renderer, b *Bullet) {
	switch b.Kind {
	case BulletNormal:
		r.DrawText("●", b.X, b.Y, shotGlyphSize, shotColor, AlignCenter)
	case BulletLaser:
		// the beam is a full bar as wide as the hitbox
		r.DrawProgressBar(b.X-b.Size/2, b.Y-laserBeamLength/2, b.Size, laserBeamLength, 1, shotColor)
	case BulletIce:
		r.DrawText("❄️", b.X, b.Y, specialShotSize, shotColor, AlignCenter)
	case BulletFire:
		r.DrawText("🔥", b.X, b.Y, specialShotSize, shotColor, AlignCenter)
	case BulletBomb:
		r.DrawText("💣", b.X, b.Y, specialShotSize, shotColor, AlignCenter)
	case BulletMissile:
		r.DrawText("🚀", b.X, b.Y, specialShotSize, shotColor, AlignCenter)
	}
}

// enemyColor tints by kind, with status effects taking priority
func enemyColor(e *Enemy) string {
	switch {
	case e.Frozen:
		return frozenColor
	case e.Burning:
		return burningColor
	}
	return GetKindDef(e.Kind).Color
}

func drawEnemy(r Renderer, e *Enemy) {
	color := enemyColor(e)
	def := GetKindDef(e.Kind)

	r.DrawText(def.Glyph, e.X, e.Y, e.Size, color, AlignCenter)
	if e.Frozen {
		r.DrawText("❄️", e.X+e.Size/3, e.Y-e.Size/3, statusIconSize, frozenColor, AlignCenter)
	}
	if e.Burning {
		r.DrawText("🔥", e.X-e.Size/3, e.Y-e.Size/3, statusIconSize, burningColor, AlignCenter)
	}
	r.DrawText(strconv.Itoa(e.HP), e.X, e.Y+e.Size/2, hpTextSize, white, AlignCenter)
	r.DrawProgressBar(e.X-e.Size/2, e.Y+e.Size/2+hpBarGap, e.Size, hpBarHeight, e.HPFraction(), color)
}
