// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Pipe applies f to value.
//
// This is forward application: Pipe(x, f) reads left-to-right and is
// equivalent to f(x). Nest it with [Compose] to express longer chains:
//
//	Pipe(3, Compose(incr, square)) // 16
func Pipe[A, B any](value A, f func(A) B) B {
	return f(value)
}

// Identity returns its argument unchanged.
//
// It is the left and right identity of [Compose].
func Identity[A any](value A) A {
	return value
}

// Const returns a function that ignores its argument and always returns value.
func Const[B, A any](value A) func(B) A {
	return func(B) A {
		return value
	}
}
