// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Flip reverses the argument order of a curried two-argument function.
//
// Flip(f)(b)(a) == f(a)(b). Combined with [Curry], this turns a function
// whose "data" argument comes first into one whose "configuration" comes
// first, so it can be partially applied:
//
//	parseHex := Flip(Curry(parseInt))(16)
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return f(a)(b)
		}
	}
}

// Flip0 is the flip of a method-like function with no arguments.
//
// Given a function returning a nullary function, such as a method
// expression bound to its receiver, Flip0 moves the nullary call to
// the front: Flip0(f)()(a) == f(a)(). Use [Zurry] to drop the empty call.
//
// This is a separate function rather than a variant of [Flip] because
// the nullary call is not a real argument.
func Flip0[A, C any](f func(A) func() C) func() func(A) C {
	return func() func(A) C {
		return func(a A) C {
			return f(a)()
		}
	}
}
