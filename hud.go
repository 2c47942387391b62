package main

import (
	"fmt"
	"strings"
)

// HUD mirrors the values a front end shows, kept current through the HUD
// event channels only
type HUD struct {
	Score        int
	Lives        int
	Level        int
	Weapons      Loadout
	RainbowBalls int
	RainbowReady bool
	GameOver     bool
}

// AttachHUD seeds a HUD from g and subscribes it to g's HUD channels
func AttachHUD(g *Game) *HUD {
	h := &HUD{
		Score:        g.Score(),
		Lives:        g.Lives(),
		Level:        g.Level(),
		Weapons:      g.Weapons(),
		RainbowBalls: g.RainbowBalls(),
		RainbowReady: g.RainbowReady(),
		GameOver:     !g.Running(),
	}
	g.Subscribe(EventScoreChanged, h.onEvent)
	g.Subscribe(EventLivesChanged, h.onEvent)
	g.Subscribe(EventWeaponChanged, h.onEvent)
	g.Subscribe(EventRainbowBallsChanged, h.onEvent)
	g.Subscribe(EventLevelChanged, h.onEvent)
	g.Subscribe(EventPlayerDestroyed, h.onEvent)
	return h
}

func (h *HUD) onEvent(_ *Game, ev Event) error {
	switch e := ev.(type) {
	case ScoreChangedEvent:
		h.Score = e.Score
	case LivesChangedEvent:
		h.Lives = e.Lives
	case WeaponChangedEvent:
		h.Weapons = e.Weapons
	case RainbowBallsChangedEvent:
		h.RainbowBalls = e.Count
		h.RainbowReady = e.Ready
	case LevelChangedEvent:
		h.Level = e.Level
	case PlayerDestroyedEvent:
		h.GameOver = true
	default:
		return unexpected(ev)
	}
	return nil
}

// WeaponLine lists owned weapons as glyph and level
func (h *HUD) WeaponLine() string {
	var sb strings.Builder
	for w, lv := range h.Weapons {
		if lv == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s%d", ItemKind(w).Glyph(), lv)
	}
	return sb.String()
}

// RainbowLine shows progress toward the star burst
func (h *HUD) RainbowLine() string {
	if h.RainbowReady {
		return "🌈 READY"
	}
	return fmt.Sprintf("🌈 %d/%d", h.RainbowBalls, rainbowThreshold)
}

const (
	hudTextSize = 16.0
	hudMargin   = 8.0
	hudLine     = 20.0
)

// Draw renders the HUD along the top of a playfield of the given size
func (h *HUD) Draw(r Renderer, width, height float64) {
	r.DrawText(fmt.Sprintf("Score %d", h.Score), hudMargin, hudMargin, hudTextSize, white, AlignLeft)
	r.DrawText(fmt.Sprintf("Lv %d", h.Level), width/2, hudMargin, hudTextSize, white, AlignCenter)
	r.DrawText(fmt.Sprintf("❤️ %d", h.Lives), width-hudMargin, hudMargin, hudTextSize, "#ff0000", AlignRight)
	if line := h.WeaponLine(); line != "" {
		r.DrawText(line, hudMargin, hudMargin+hudLine, hudTextSize, shotColor, AlignLeft)
	}
	r.DrawText(h.RainbowLine(), width-hudMargin, hudMargin+hudLine, hudTextSize, white, AlignRight)

	if h.GameOver {
		r.DrawText("GAME OVER", width/2, height/2, 32, enemyShotColor, AlignCenter)
		r.DrawText("r: restart  q: quit", width/2, height/2+2*hudLine, hudTextSize, white, AlignCenter)
	}
}
