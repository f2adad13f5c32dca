/*
Package maybe implements an optional value, modelled after Elm's Maybe type.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A Maybe holds either exactly one value (Just) or no value at all (Nothing).
It is used for results of computations which may legitimately produce
nothing, e.g. looking up a key which is not present in a container.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the absent value for T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromOk bridges Go's comma-ok idiom:
//
//     v, ok := m[key]
//     value := maybe.FromOk(v, ok)
//
func FromOk[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail. f is called only if x holds a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return f(x.WithDefault(zero))
}

// Map transforms the value of x, if present. Contrary to method Map, the result
// may be of a different type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return Just(f(x.WithDefault(zero)))
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching on the state of a Maybe:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
// Matching compares matchers, therefore T has to be a comparable type.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
