// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Compose chains two functions together into a pipeline.
//
// The output of f becomes the input to g, so Compose(f, g)(x) == g(f(x)).
// Composition is associative: Compose(Compose(f, g), h) and
// Compose(f, Compose(g, h)) return the same value for every input.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 chains three functions together.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose(f, Compose(g, h))
}

// Compose4 chains four functions together.
func Compose4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return Compose(f, Compose3(g, h, i))
}

// ComposeBackward is [Compose] with the arguments in reverse order.
//
// ComposeBackward(g, f)(x) == g(f(x)). This reads naturally when composing
// lifts such as [First] and [Second], which compose backwards with respect
// to the structure they focus on.
func ComposeBackward[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return Compose(f, g)
}

// Concat composes any number of functions from a type to itself.
//
// The functions run in argument order. With no arguments the result
// behaves like [Identity].
func Concat[A any](fs ...func(A) A) func(A) A {
	// copy so that callers reusing their slice cannot change the pipeline
	stages := append([]func(A) A(nil), fs...)
	return func(a A) A {
		for _, f := range stages {
			a = f(a)
		}
		return a
	}
}
