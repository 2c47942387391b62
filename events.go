package main

import (
	"errors"
	"fmt"
)

// EventKind names an event bus channel
type EventKind int

const (
	EventEnemyHit EventKind = iota + 1
	EventEnemyDestroyed
	EventPlayerHit
	EventPlayerDestroyed
	EventItemCollected
	EventBombExplosion

	// HUD channels
	EventScoreChanged
	EventLivesChanged
	EventWeaponChanged
	EventRainbowBallsChanged
	EventLevelChanged

	eventKindEnd
)

var eventKindNames = map[EventKind]string{
	EventEnemyHit:            "enemyHit",
	EventEnemyDestroyed:      "enemyDestroyed",
	EventPlayerHit:           "playerHit",
	EventPlayerDestroyed:     "playerDestroyed",
	EventItemCollected:       "itemCollected",
	EventBombExplosion:       "bombExplosion",
	EventScoreChanged:        "scoreChanged",
	EventLivesChanged:        "livesChanged",
	EventWeaponChanged:       "weaponChanged",
	EventRainbowBallsChanged: "rainbowBallsChanged",
	EventLevelChanged:        "levelChanged",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a payload published on the bus
type Event interface {
	Kind() EventKind
}

type EnemyHitEvent struct {
	Enemy  *Enemy
	Bullet *Bullet
	Damage int
}

type EnemyDestroyedEvent struct {
	Enemy *Enemy
}

type PlayerHitEvent struct {
	Bullet *Bullet
	Damage int
}

type PlayerDestroyedEvent struct{}

type ItemCollectedEvent struct {
	Item   *Item
	Player *Player
}

// BombExplosionEvent carries the bullet so the blast hits reuse it
type BombExplosionEvent struct {
	X, Y   float64
	Radius float64
	Damage int
	Bullet *Bullet
}

type ScoreChangedEvent struct {
	Score int
}

type LivesChangedEvent struct {
	Lives int
}

type WeaponChangedEvent struct {
	Weapons Loadout
}

type RainbowBallsChangedEvent struct {
	Count int
	Ready bool
}

type LevelChangedEvent struct {
	Level int
}

func (EnemyHitEvent) Kind() EventKind            { return EventEnemyHit }
func (EnemyDestroyedEvent) Kind() EventKind      { return EventEnemyDestroyed }
func (PlayerHitEvent) Kind() EventKind           { return EventPlayerHit }
func (PlayerDestroyedEvent) Kind() EventKind     { return EventPlayerDestroyed }
func (ItemCollectedEvent) Kind() EventKind       { return EventItemCollected }
func (BombExplosionEvent) Kind() EventKind       { return EventBombExplosion }
func (ScoreChangedEvent) Kind() EventKind        { return EventScoreChanged }
func (LivesChangedEvent) Kind() EventKind        { return EventLivesChanged }
func (WeaponChangedEvent) Kind() EventKind       { return EventWeaponChanged }
func (RainbowBallsChangedEvent) Kind() EventKind { return EventRainbowBallsChanged }
func (LevelChangedEvent) Kind() EventKind        { return EventLevelChanged }

// Handler reacts to one event. Returned errors are logged and counted; they
// never stop the other subscribers.
type Handler func(g *Game, ev Event) error

var errUnexpectedPayload = errors.New("unexpected event payload")

// EventBus is a synchronous, re-entrant pub/sub registry. Not safe for
// concurrent use.
type EventBus struct {
	subs     [eventKindEnd][]Handler
	failures int
}

// Subscribe appends h to the channel for kind
func (b *EventBus) Subscribe(kind EventKind, h Handler) {
	if kind <= 0 || kind >= eventKindEnd || h == nil {
		return
	}
	b.subs[kind] = append(b.subs[kind], h)
}

// Subscribers returns how many handlers listen on kind
func (b *EventBus) Subscribers(kind EventKind) int {
	if kind <= 0 || kind >= eventKindEnd {
		return 0
	}
	return len(b.subs[kind])
}

// Failures is the number of handler errors and panics recovered so far
func (b *EventBus) Failures() int {
	return b.failures
}

// Emit runs every handler registered for ev's kind, in order. Handlers added
// during the emission only see later events.
func (g *Game) Emit(ev Event) {
	kind := ev.Kind()
	if kind <= 0 || kind >= eventKindEnd {
		return
	}
	handlers := append([]Handler(nil), g.bus.subs[kind]...)
	for i, h := range handlers {
		if err := g.dispatch(h, ev); err != nil {
			g.bus.failures++
			g.log.Warn("event handler failed", "event", kind.String(), "handler", i, "err", err)
		}
	}
}

func (g *Game) dispatch(h Handler, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(g, ev)
}
