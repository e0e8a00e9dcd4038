// Package optional provides the slot type used by translated loader
// declarations. Every OpenGL function pointer starts out empty and is
// populated by the loader once a rendering context is current.
package optional

import "fmt"

// Option holds a value that may not have been set yet.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a populated Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is set.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether the value is set.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Set populates the slot.
func (o *Option[T]) Set(v T) {
	o.value = v
	o.ok = true
}

// Reset empties the slot.
func (o *Option[T]) Reset() {
	var zero T
	o.value = zero
	o.ok = false
}

// Expect returns the value or panics naming symbol.
func (o Option[T]) Expect(symbol string) T {
	if !o.ok {
		panic(fmt.Sprintf("optional: %s is not resolved", symbol))
	}
	return o.value
}
