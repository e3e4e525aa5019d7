package ecs

import (
	"slices"

	"github.com/milk9111/platformer/ecs/component"
)

// ForEach calls fn for every entity with a component of kind, in slot order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	a, err := storeFor(w, kind, false)
	if err != nil || a == nil {
		return
	}
	for _, id := range sortedIDs(a) {
		v, _ := a.get(id)
		fn(w.entityFor(id), v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	a, errA := storeFor(w, ka, false)
	b, errB := storeFor(w, kb, false)
	if errA != nil || errB != nil || a == nil || b == nil {
		return
	}
	for _, id := range intersect(a, b) {
		va, _ := a.get(id)
		vb, _ := b.get(id)
		fn(w.entityFor(id), va, vb)
	}
}

// ForEach4 visits entities holding all four kinds, in slot order.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	a, errA := storeFor(w, ka, false)
	b, errB := storeFor(w, kb, false)
	c, errC := storeFor(w, kc, false)
	d, errD := storeFor(w, kd, false)
	if errA != nil || errB != nil || errC != nil || errD != nil || a == nil || b == nil || c == nil || d == nil {
		return
	}
	for _, id := range intersect(a, b, c, d) {
		va, _ := a.get(id)
		vb, _ := b.get(id)
		vc, _ := c.get(id)
		vd, _ := d.get(id)
		fn(w.entityFor(id), va, vb, vc, vd)
	}
}

// intersect returns the slot ids present in every store, sorted. It walks
// the smallest store.
func intersect(stores ...store) []entityID {
	if len(stores) == 0 {
		return nil
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if len(s.ids()) < len(smallest.ids()) {
			smallest = s
		}
	}
	out := make([]entityID, 0, len(smallest.ids()))
	for _, id := range smallest.ids() {
		inAll := true
		for _, s := range stores {
			if !s.has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func sortedIDs(s store) []entityID {
	ids := slices.Clone(s.ids())
	slices.Sort(ids)
	return ids
}
