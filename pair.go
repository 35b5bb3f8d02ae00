// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Pair is an immutable, heterogeneous 2-tuple.
//
// Pair has value semantics: the lenses in this package always return a
// new Pair and never modify the one they receive.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair constructs a [Pair].
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the components as the multiple return values
// that are customary in Go.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new [Pair] with the components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// First lifts f into a transformation of the first component of a [Pair].
//
// The second component is copied unchanged.
func First[A, B, C any](f func(A) B) func(Pair[A, C]) Pair[B, C] {
	return func(p Pair[A, C]) Pair[B, C] {
		return Pair[B, C]{First: f(p.First), Second: p.Second}
	}
}

// Second lifts f into a transformation of the second component of a [Pair].
//
// The first component is copied unchanged.
func Second[A, B, C any](f func(B) C) func(Pair[A, B]) Pair[A, C] {
	return func(p Pair[A, B]) Pair[A, C] {
		return Pair[A, C]{First: p.First, Second: f(p.Second)}
	}
}

// Both lifts f and g over the first and second component respectively.
//
// Because the two lenses act on disjoint components, the result is the
// same as Compose(First(f), Second(g)) and Compose(Second(g), First(f)).
func Both[A, B, C, D any](f func(A) B, g func(C) D) func(Pair[A, C]) Pair[B, D] {
	return func(p Pair[A, C]) Pair[B, D] {
		return Pair[B, D]{First: f(p.First), Second: g(p.Second)}
	}
}
