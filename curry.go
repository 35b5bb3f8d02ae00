// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Curry converts a two-argument function into a chain of single-argument functions.
//
// Curry(f)(a)(b) == f(a, b).
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 is like [Curry] for three-argument functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry is the inverse of [Curry].
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Uncurry3 is the inverse of [Curry3].
func Uncurry3[A, B, C, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return f(a)(b)(c)
	}
}

// Zurry invokes a nullary function and returns its result.
//
// This collapses a deferred value, such as the one returned by [Flip0],
// into a plain value at the call site.
func Zurry[A any](f func() A) A {
	return f()
}
