package main

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// idleEnemy does not move or fire on its own
func idleEnemy(hp int) *Enemy {
	return &Enemy{
		Kind:  KindGreen,
		HP:    hp,
		MaxHP: hp,
		Size:  EnemyBaseSize + float64(hp)*EnemySizePerHP,
	}
}

func TestNewEnemyStats(t *testing.T) {
	rng := testRNG()
	for kind := KindGreen; kind <= KindBoss; kind++ {
		def := GetKindDef(kind)
		for level := 1; level <= 5; level++ {
			for i := 0; i < 50; i++ {
				e := NewEnemy(100, -40, kind, level, rng)

				minHP := 1 + (level - 1) + def.HPBonus
				if e.HP < minHP || e.HP > minHP+EnemyHPJitter-1 {
					t.Fatalf("%s L%d: hp %d outside [%d,%d]", kind, level, e.HP, minHP, minHP+EnemyHPJitter-1)
				}
				if e.MaxHP != e.HP {
					t.Fatalf("%s: expected max hp %d, got %d", kind, e.HP, e.MaxHP)
				}
				minSpeed := 1 + float64(level-1)*EnemySpeedPerLevel + def.SpeedBonus
				if e.Speed < minSpeed || e.Speed > minSpeed+EnemySpeedJitter+1e-9 {
					t.Fatalf("%s L%d: speed %f outside [%f,%f)", kind, level, e.Speed, minSpeed, minSpeed+EnemySpeedJitter)
				}
				if e.OriginalSpeed != e.Speed {
					t.Fatalf("%s: original speed %f != speed %f", kind, e.OriginalSpeed, e.Speed)
				}
				if e.Size != EnemyBaseSize+float64(e.HP)*EnemySizePerHP {
					t.Fatalf("%s: size %f does not follow hp %d", kind, e.Size, e.HP)
				}
				if e.FireInterval < EnemyFireBase || e.FireInterval >= EnemyFireBase+EnemyFireJitter {
					t.Fatalf("%s: fire interval %d out of range", kind, e.FireInterval)
				}
				if e.CanFire != (kind != KindGreen) {
					t.Fatalf("%s: unexpected CanFire %v", kind, e.CanFire)
				}
			}
		}
	}
}

func TestEnemyTakeDamageClamps(t *testing.T) {
	e := idleEnemy(5)
	e.TakeDamage(3)
	if e.HP != 2 {
		t.Errorf("expected HP 2, got %d", e.HP)
	}
	e.TakeDamage(10)
	if e.HP != 0 || !e.IsDead() {
		t.Errorf("expected dead enemy at HP 0, got %d", e.HP)
	}
	e.TakeDamage(4)
	if e.HP != 0 {
		t.Errorf("expected HP to stay 0, got %d", e.HP)
	}
}

func TestEnemyMovesDown(t *testing.T) {
	e := idleEnemy(3)
	e.Speed = 2
	e.OriginalSpeed = 2
	e.Update(1)
	if e.Y != 2 {
		t.Errorf("expected y 2, got %f", e.Y)
	}
}

func TestEnemyOffScreen(t *testing.T) {
	e := idleEnemy(1)
	e.Y = 960
	if e.IsOffScreen(900) {
		t.Error("expected y=960 to still be on screen")
	}
	e.Y = 961
	if !e.IsOffScreen(900) {
		t.Error("expected y=961 to be off screen")
	}
}

func TestFreezeStopsAndRestores(t *testing.T) {
	e := idleEnemy(5)
	e.Speed = 1.5
	e.OriginalSpeed = 1.5
	e.CanFire = true
	e.FireInterval = 0

	e.ApplyFreeze(3)
	for i := 0; i < 2; i++ {
		if e.Update(1) {
			t.Fatal("frozen enemy must not fire")
		}
		if e.Speed != 0 || !e.Frozen {
			t.Fatalf("tick %d: expected frozen with speed 0, got %f", i, e.Speed)
		}
	}
	if e.Y != 0 {
		t.Errorf("frozen enemy moved to %f", e.Y)
	}
	e.Update(1)
	if e.Frozen || e.Speed != 1.5 {
		t.Errorf("expected freeze to end with speed 1.5, got frozen=%v speed=%f", e.Frozen, e.Speed)
	}
}

func TestApplyFreezeKeepsLongerTimer(t *testing.T) {
	e := idleEnemy(5)
	e.ApplyFreeze(90)
	e.ApplyFreeze(30)
	if e.FrozenTimer != 90 {
		t.Errorf("expected timer 90, got %d", e.FrozenTimer)
	}
	e.ApplyFreeze(120)
	if e.FrozenTimer != 120 {
		t.Errorf("expected timer 120, got %d", e.FrozenTimer)
	}
}

func burnLoss(duration, damage int) int {
	e := idleEnemy(10000)
	e.ApplyBurn(duration, damage)
	for i := 0; i < duration+TickRate; i++ {
		e.Update(1)
	}
	return 10000 - e.HP
}

func TestBurnCadence(t *testing.T) {
	tests := []struct {
		duration, damage, want int
	}{
		{120, 1, 2},
		{120, 3, 6},
		{90, 2, 2},
		{59, 5, 0},
		{60, 4, 4},
		{181, 1, 3},
	}
	for _, tt := range tests {
		if got := burnLoss(tt.duration, tt.damage); got != tt.want {
			t.Errorf("burn %d ticks x %d: expected %d damage, got %d", tt.duration, tt.damage, tt.want, got)
		}
	}
}

func TestBurnEnds(t *testing.T) {
	e := idleEnemy(100)
	e.ApplyBurn(BurnTicks, 1)
	for i := 0; i < BurnTicks; i++ {
		e.Update(1)
	}
	if e.Burning {
		t.Error("expected burn to clear when its timer ran out")
	}
}

func TestEnemyFireCadence(t *testing.T) {
	e := idleEnemy(5)
	e.CanFire = true
	e.FireInterval = 120

	// level 1 shaves 5 ticks: fires once the timer exceeds 115
	for i := 1; i <= 116; i++ {
		fired := e.Update(1)
		if fired != (i == 116) {
			t.Fatalf("tick %d: fired=%v", i, fired)
		}
	}
	if e.FireTimer != 0 {
		t.Errorf("expected fire timer reset, got %d", e.FireTimer)
	}
}

func TestEnemyBulletFromBottomEdge(t *testing.T) {
	e := idleEnemy(4)
	e.X, e.Y = 100, 200
	b := NewEnemyBullet(e, 5)
	if b.Owner != OwnerEnemy || b.Size != EnemyBulletSize || b.Damage != 1 {
		t.Errorf("unexpected enemy bullet %+v", *b)
	}
	if b.Y != 200+e.Size/2 || b.X != 100 {
		t.Errorf("expected bullet at bottom edge, got (%f,%f)", b.X, b.Y)
	}
	if b.VY != 4 {
		t.Errorf("expected speed 4 at level 5, got %f", b.VY)
	}
}
