package ecs

import "github.com/milk9111/dinorunner/ecs/component"

// Add stores a copy of value on e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.Kind(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

// Get returns a copy of the component. Write it back with Add.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	ptr, ok := GetPtr(w, e, handle)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// GetPtr returns the stored component for in-place mutation.
func GetPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn with a pointer to every stored T.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	for _, e := range w.Query(kind) {
		if v, ok := w.GetComponent(e, kind); ok {
			if cast, ok := v.(*T); ok {
				fn(e, cast)
			}
		}
	}
}

// ForEach2 calls fn for entities holding both A and B.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		va, okA := w.GetComponent(e, ka)
		vb, okB := w.GetComponent(e, kb)
		if !okA || !okB {
			continue
		}
		a, okA := va.(*A)
		b, okB := vb.(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
