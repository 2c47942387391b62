package main

import "fmt"

const destroyScorePerHP = 5

// coreHandlers is the simulation's own dispatch table. It is registered
// before any outside subscriber, so core state is updated first.
var coreHandlers = []struct {
	kind    EventKind
	handler Handler
}{
	{EventEnemyHit, (*Game).onEnemyHit},
	{EventEnemyDestroyed, (*Game).onEnemyDestroyed},
	{EventPlayerHit, (*Game).onPlayerHit},
	{EventPlayerDestroyed, (*Game).onPlayerDestroyed},
	{EventItemCollected, (*Game).onItemCollected},
	{EventBombExplosion, (*Game).onBombExplosion},
}

func (g *Game) registerCoreHandlers() {
	for _, c := range coreHandlers {
		g.bus.Subscribe(c.kind, c.handler)
	}
}

func unexpected(ev Event) error {
	return fmt.Errorf("%w: %T on %s", errUnexpectedPayload, ev, ev.Kind())
}

func (g *Game) onEnemyHit(ev Event) error {
	hit, ok := ev.(EnemyHitEvent)
	if !ok || hit.Enemy == nil || hit.Bullet == nil {
		return unexpected(ev)
	}
	e, b := hit.Enemy, hit.Bullet

	e.TakeDamage(hit.Damage)
	g.addEffect(NewHitEffect(e.X, e.Y, hit.Damage, HitColor))
	g.addScore(GetKindDef(e.Kind).HitScore)

	if b.Kind != BulletLaser || b.Penetration == 0 {
		b.Remove()
	}
	return nil
}

func (g *Game) onEnemyDestroyed(ev Event) error {
	d, ok := ev.(EnemyDestroyedEvent)
	if !ok || d.Enemy == nil {
		return unexpected(ev)
	}
	e := d.Enemy

	g.addScore(e.MaxHP * destroyScorePerHP)
	g.addEffect(NewExplosionEffect(e.X, e.Y, false))

	if g.rng.Float64() >= g.cfg.DropChance {
		return nil
	}
	kind := ItemRainbowBall
	if e.Kind != KindRainbow {
		kind = dropPool[g.rng.IntN(len(dropPool))]
	}
	g.items = append(g.items, NewItem(e.X, e.Y, kind))
	g.log.Debug("item dropped", "item", kind.String(), "enemy", e.Kind.String(), "tick", g.tick)
	return nil
}

func (g *Game) onPlayerHit(ev Event) error {
	hit, ok := ev.(PlayerHitEvent)
	if !ok || hit.Bullet == nil {
		return unexpected(ev)
	}
	p := g.player

	if p.TakeDamage(hit.Damage) {
		g.Emit(LivesChangedEvent{Lives: p.Lives})
		g.addEffect(NewHitEffect(p.X, p.Y, hit.Damage, PlayerHitColor))
	}
	hit.Bullet.Remove()
	return nil
}

func (g *Game) onPlayerDestroyed(ev Event) error {
	if _, ok := ev.(PlayerDestroyedEvent); !ok {
		return unexpected(ev)
	}
	g.running = false
	g.addEffect(NewExplosionEffect(g.player.X, g.player.Y, true))
	g.log.Info("game over", "score", g.score, "level", g.level, "tick", g.tick)
	return nil
}

func (g *Game) onItemCollected(ev Event) error {
	c, ok := ev.(ItemCollectedEvent)
	if !ok || c.Item == nil {
		return unexpected(ev)
	}
	p := c.Player
	if p == nil {
		p = g.player
	}

	switch c.Item.Kind {
	case ItemSpread, ItemLaser, ItemIce, ItemFire, ItemBomb, ItemMissile:
		w, _ := c.Item.Kind.Weapon()
		p.Weapons.Upgrade(w)
	case ItemHeart:
		p.Lives++
		g.Emit(LivesChangedEvent{Lives: p.Lives})
	case ItemGoldHeart:
		if p.Lives <= p.MaxLives {
			p.Lives = p.MaxLives
		}
		g.Emit(LivesChangedEvent{Lives: p.Lives})
	case ItemRainbowBall:
		g.rainbowBalls = min(rainbowThreshold, g.rainbowBalls+1)
		if g.rainbowBalls >= rainbowThreshold {
			g.rainbowReady = true
		}
		g.Emit(RainbowBallsChangedEvent{Count: g.rainbowBalls, Ready: g.rainbowReady})
	default:
		return unexpected(ev)
	}

	g.Emit(WeaponChangedEvent{Weapons: p.Weapons})
	g.addEffect(NewSparkleEffect(c.Item.X, c.Item.Y))
	return nil
}

func (g *Game) onBombExplosion(ev Event) error {
	x, ok := ev.(BombExplosionEvent)
	if !ok || x.Bullet == nil {
		return unexpected(ev)
	}
	for _, e := range g.enemiesWithin(x.X, x.Y, x.Radius) {
		g.Emit(EnemyHitEvent{Enemy: e, Bullet: x.Bullet, Damage: x.Damage})
	}
	g.addEffect(NewExplosionEffect(x.X, x.Y, false))
	return nil
}
