package main

import (
	"errors"
	"testing"
)

func TestRegistryAcquireResolve(t *testing.T) {
	r := newEnemyRegistry()
	a, b := &Enemy{HP: 1}, &Enemy{HP: 2}
	ha := r.Acquire(a)
	hb := r.Acquire(b)

	if a.Handle != ha || b.Handle != hb {
		t.Error("expected Acquire to stamp the handle on the enemy")
	}
	if got, ok := r.Resolve(hb); !ok || got != b {
		t.Errorf("expected b, got %v %v", got, ok)
	}
	if _, ok := r.Resolve(EnemyHandle{}); ok {
		t.Error("zero handle resolved")
	}
	if _, ok := r.Resolve(EnemyHandle{Index: 50, Gen: 1}); ok {
		t.Error("out of range handle resolved")
	}
}

func TestRegistryReuseInvalidatesOldHandle(t *testing.T) {
	r := newEnemyRegistry()
	old := r.Acquire(&Enemy{HP: 1})
	r.Release(old)
	fresh := r.Acquire(&Enemy{HP: 2})

	if fresh.Index != old.Index {
		t.Fatalf("expected slot %d reused, got %d", old.Index, fresh.Index)
	}
	if fresh.Gen == old.Gen {
		t.Fatal("expected a new generation on reuse")
	}
	if _, ok := r.Resolve(old); ok {
		t.Error("stale handle resolved to the new occupant")
	}

	r.Release(old)
	if _, ok := r.Resolve(fresh); !ok {
		t.Error("releasing a stale handle evicted the new occupant")
	}
}

func TestRegistryStateRoundTrip(t *testing.T) {
	r := newEnemyRegistry()
	a, b, c := &Enemy{HP: 1}, &Enemy{HP: 1}, &Enemy{HP: 1}
	r.Acquire(a)
	hb := r.Acquire(b)
	r.Acquire(c)
	r.Release(hb)

	restored, err := restoreRegistry(r.state(), []*Enemy{a, c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := restored.Resolve(c.Handle); !ok || got != c {
		t.Error("expected c to resolve after restore")
	}
	if _, ok := restored.Resolve(hb); ok {
		t.Error("released handle resolved after restore")
	}
	if h := restored.Acquire(&Enemy{HP: 1}); h.Index != hb.Index {
		t.Errorf("expected the free slot %d to be reused, got %d", hb.Index, h.Index)
	}
}

func TestRestoreRegistryRejectsStaleHandle(t *testing.T) {
	r := newEnemyRegistry()
	e := &Enemy{HP: 1}
	r.Acquire(e)
	st := r.state()

	e.Handle.Gen++
	if _, err := restoreRegistry(st, []*Enemy{e}); !errors.Is(err, errStaleHandle) {
		t.Errorf("expected errStaleHandle, got %v", err)
	}
}
