package main

// CanStarBurst returns true if the special is armed and the ship is alive
func (g *Game) CanStarBurst() bool {
	return g.running && g.rainbowReady && g.player.IsAlive()
}

// TriggerStarBurst spends the rainbow balls on an 8-way laser burst around
// the ship. It does not touch the auto-fire timer. Returns false when the
// special is not armed.
func (g *Game) TriggerStarBurst() bool {
	if !g.CanStarBurst() {
		return false
	}
	p := g.player
	for _, b := range NewStarBurst(p.X, p.Y) {
		g.addPlayerBullet(b)
	}

	g.rainbowBalls = 0
	g.rainbowReady = false
	g.Emit(RainbowBallsChangedEvent{Count: 0, Ready: false})
	g.addEffect(NewExplosionEffect(p.X, p.Y, false))
	g.log.Debug("star burst", "tick", g.tick)
	return true
}
