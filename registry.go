package main

// EnemyHandle is a weak reference to an enemy. It stops resolving once the
// enemy has been pruned, even if the slot is reused by a newer enemy.
type EnemyHandle struct {
	Index uint32 `msgpack:"i"`
	Gen   uint32 `msgpack:"g"` // 0 = never set
}

// Valid reports whether the handle was ever assigned
func (h EnemyHandle) Valid() bool {
	return h.Gen != 0
}

type registrySlot struct {
	gen   uint32
	enemy *Enemy
}

// enemyRegistry maps handles to live enemies with generation checks
type enemyRegistry struct {
	slots []registrySlot
	free  []uint32
}

func newEnemyRegistry() *enemyRegistry {
	return &enemyRegistry{}
}

// Acquire assigns a fresh handle to e
func (r *enemyRegistry) Acquire(e *Enemy) EnemyHandle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, registrySlot{})
	}
	slot := &r.slots[idx]
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	slot.enemy = e
	h := EnemyHandle{Index: idx, Gen: slot.gen}
	e.Handle = h
	return h
}

// Release invalidates h. Releasing a stale handle is a no-op.
func (r *enemyRegistry) Release(h EnemyHandle) {
	if !r.owns(h) {
		return
	}
	slot := &r.slots[h.Index]
	slot.enemy = nil
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	r.free = append(r.free, h.Index)
}

// Resolve returns the enemy behind h if it is still registered
func (r *enemyRegistry) Resolve(h EnemyHandle) (*Enemy, bool) {
	if !r.owns(h) {
		return nil, false
	}
	return r.slots[h.Index].enemy, true
}

func (r *enemyRegistry) owns(h EnemyHandle) bool {
	if !h.Valid() || int(h.Index) >= len(r.slots) {
		return false
	}
	slot := r.slots[h.Index]
	return slot.gen == h.Gen && slot.enemy != nil
}

// registryState is the serializable form used by snapshots
type registryState struct {
	Gens []uint32 `msgpack:"gens"`
	Free []uint32 `msgpack:"free"`
}

func (r *enemyRegistry) state() registryState {
	st := registryState{
		Gens: make([]uint32, len(r.slots)),
		Free: append([]uint32(nil), r.free...),
	}
	for i, s := range r.slots {
		st.Gens[i] = s.gen
	}
	return st
}

// restoreRegistry rebuilds a registry and re-links the given enemies by handle
func restoreRegistry(st registryState, enemies []*Enemy) (*enemyRegistry, error) {
	r := &enemyRegistry{
		slots: make([]registrySlot, len(st.Gens)),
		free:  append([]uint32(nil), st.Free...),
	}
	for i, g := range st.Gens {
		r.slots[i].gen = g
	}
	for _, e := range enemies {
		h := e.Handle
		if int(h.Index) >= len(r.slots) || r.slots[h.Index].gen != h.Gen {
			return nil, errStaleHandle
		}
		r.slots[h.Index].enemy = e
	}
	return r, nil
}
