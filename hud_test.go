package main

import (
	"testing"

	"go.uber.org/mock/gomock"
)

func TestHUDSeedsFromGame(t *testing.T) {
	g := newTestGame(t)
	g.addScore(40)
	h := AttachHUD(g)
	if h.Score != 40 || h.Lives != 3 || h.Level != 1 || h.GameOver {
		t.Errorf("unexpected seeded HUD %+v", *h)
	}
}

func TestHUDFollowsEvents(t *testing.T) {
	g := newTestGame(t)
	h := AttachHUD(g)

	collect(g, ItemFire, ItemFire, ItemMissile, ItemHeart, ItemRainbowBall)
	if h.Weapons[WeaponFire] != 2 || h.Weapons[WeaponMissile] != 1 {
		t.Errorf("expected weapons mirrored, got %v", h.Weapons)
	}
	if h.Lives != 4 {
		t.Errorf("expected 4 lives, got %d", h.Lives)
	}
	if h.RainbowBalls != 1 || h.RainbowReady {
		t.Errorf("expected 1 ball not ready, got %d %v", h.RainbowBalls, h.RainbowReady)
	}

	g.addScore(1200)
	if h.Score != 1200 || h.Level != 2 {
		t.Errorf("expected score 1200 at level 2, got %d at %d", h.Score, h.Level)
	}

	g.Emit(PlayerDestroyedEvent{})
	if !h.GameOver {
		t.Error("expected game over flag")
	}
	if g.HandlerFailures() != 0 {
		t.Errorf("expected no handler failures, got %d", g.HandlerFailures())
	}
}

func TestHUDLines(t *testing.T) {
	h := &HUD{Weapons: Loadout{WeaponLaser: 2, WeaponBomb: 3}}
	if got := h.WeaponLine(); got != "⚡2 💣3" {
		t.Errorf("unexpected weapon line %q", got)
	}
	if got := (&HUD{}).WeaponLine(); got != "" {
		t.Errorf("expected empty weapon line, got %q", got)
	}
	h.RainbowBalls = 2
	if got := h.RainbowLine(); got != "🌈 2/3" {
		t.Errorf("unexpected rainbow line %q", got)
	}
	h.RainbowBalls, h.RainbowReady = 3, true
	if got := h.RainbowLine(); got != "🌈 READY" {
		t.Errorf("unexpected rainbow line %q", got)
	}
}

func TestHUDDrawGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockRenderer(ctrl)
	h := &HUD{Score: 10, Lives: 0, Level: 1, GameOver: true}

	r.EXPECT().DrawText("Score 10", hudMargin, hudMargin, hudTextSize, white, AlignLeft)
	r.EXPECT().DrawText("Lv 1", 300.0, hudMargin, hudTextSize, white, AlignCenter)
	r.EXPECT().DrawText("❤️ 0", 600.0-hudMargin, hudMargin, hudTextSize, gomock.Any(), AlignRight)
	r.EXPECT().DrawText("🌈 0/3", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), AlignRight)
	r.EXPECT().DrawText("GAME OVER", 300.0, 450.0, gomock.Any(), gomock.Any(), AlignCenter)
	r.EXPECT().DrawText(gomock.Any(), 300.0, gomock.Any(), gomock.Any(), gomock.Any(), AlignCenter)
	h.Draw(r, 600, 900)
}
