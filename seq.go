// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import "github.com/samber/lo"

// MapOver lifts f to act element-wise over a slice.
//
// The returned function always allocates a new slice with the same length
// and order as its input. Composing maps is the map of the composition:
// Compose(MapOver(f), MapOver(g)) behaves like MapOver(Compose(f, g)), but
// the latter traverses the slice once.
func MapOver[A, B any](f func(A) B) func([]A) []B {
	return func(xs []A) []B {
		return lo.Map(xs, func(x A, _ int) B {
			return f(x)
		})
	}
}

// FilterOver lifts p to select the elements of a slice satisfying it.
//
// Relative order is preserved and the input slice is never modified.
func FilterOver[A any](p func(A) bool) func([]A) []A {
	return func(xs []A) []A {
		return lo.Filter(xs, func(x A, _ int) bool {
			return p(x)
		})
	}
}

// ReduceOver is a curried left fold.
//
// The configuration (the accumulating function and the initial value) comes
// before the data, so that a partially applied fold can be composed:
//
//	sum := ReduceOver(func(acc, x int) int { return acc + x })(0)
//	sum([]int{1, 2, 3}) // 6
func ReduceOver[A, R any](f func(R, A) R) func(R) func([]A) R {
	return func(initial R) func([]A) R {
		return func(xs []A) R {
			return lo.Reduce(xs, func(acc R, x A, _ int) R {
				return f(acc, x)
			}, initial)
		}
	}
}
