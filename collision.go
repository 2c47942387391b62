package main

// CheckCollision reports whether two bodies overlap: the distance between
// their centres is less than the average of their sizes
func CheckCollision(x1, y1, s1, x2, y2, s2 float64) bool {
	reach := (s1 + s2) / 2
	return DistanceSq(x1, y1, x2, y2) < reach*reach
}

// buildGrid indexes the enemies for this tick's queries
func (g *Game) buildGrid() {
	if g.gridOK {
		return
	}
	g.grid.Clear()
	for i, e := range g.enemies {
		g.grid.Insert(e.X, e.Y, e.Size/2, i)
	}
	g.gridOK = true
}

// resolveCollisions runs after everything has moved and turns overlaps into
// events. It never changes health, score or inventory itself.
func (g *Game) resolveCollisions() {
	g.buildGrid()

	for _, b := range g.bullets {
		if b.Spent {
			continue
		}
		e := g.firstEnemyHit(b)
		if e == nil {
			continue
		}
		g.Emit(EnemyHitEvent{Enemy: e, Bullet: b, Damage: b.Damage})
		g.applyBulletEffect(b, e)
	}

	p := g.player
	if !p.IsAlive() {
		return
	}
	for _, b := range g.enemyBullets {
		if b.Spent {
			continue
		}
		if b.CollidesWith(p.X, p.Y, p.Size) {
			g.Emit(PlayerHitEvent{Bullet: b, Damage: b.Damage})
			break
		}
	}

	for _, it := range g.items {
		if it.Collected {
			continue
		}
		if it.CollidesWith(p.X, p.Y, p.Size) {
			it.Collected = true
			g.Emit(ItemCollectedEvent{Item: it, Player: p})
		}
	}
}

// firstEnemyHit returns the live enemy with the lowest index that b overlaps.
// A laser ignores the enemy it last pierced.
func (g *Game) firstEnemyHit(b *Bullet) *Enemy {
	g.queryBuf = g.grid.QueryBuf(b.X, b.Y, b.Size/2, g.queryBuf)
	for _, i := range g.queryBuf {
		e := g.enemies[i]
		if e.IsDead() {
			continue
		}
		if b.Kind == BulletLaser && b.LastHit.Valid() && b.LastHit == e.Handle {
			continue
		}
		if b.CollidesWith(e.X, e.Y, e.Size) {
			return e
		}
	}
	return nil
}

// enemiesWithin returns the live enemies whose centres lie within radius of
// x, y, in collection order
func (g *Game) enemiesWithin(x, y, radius float64) []*Enemy {
	g.buildGrid()
	var out []*Enemy
	for _, i := range g.grid.Query(x, y, radius) {
		e := g.enemies[i]
		if e.IsDead() {
			continue
		}
		if DistanceSq(x, y, e.X, e.Y) <= radius*radius {
			out = append(out, e)
		}
	}
	return out
}

// applyBulletEffect runs the per-variant follow-up of a hit
func (g *Game) applyBulletEffect(b *Bullet, e *Enemy) {
	switch b.Kind {
	case BulletLaser:
		b.LastHit = e.Handle
		b.ConsumePenetration()
	case BulletIce:
		e.ApplyFreeze(b.FreezeTicks)
	case BulletFire:
		e.ApplyBurn(b.BurnTicks, b.BurnDamage)
	case BulletBomb:
		if b.Exploded {
			return
		}
		b.Exploded = true
		g.Emit(BombExplosionEvent{X: b.X, Y: b.Y, Radius: b.Radius, Damage: b.Damage, Bullet: b})
	case BulletNormal, BulletMissile:
	}
}

// checkDeaths announces every death exactly once
func (g *Game) checkDeaths() {
	for _, e := range g.enemies {
		if e.IsDead() && !e.DestroyFired {
			e.DestroyFired = true
			g.Emit(EnemyDestroyedEvent{Enemy: e})
		}
	}
	if p := g.player; p.IsDead() && !p.DestroyFired {
		p.DestroyFired = true
		g.Emit(PlayerDestroyedEvent{})
	}
}
