// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import (
	"github.com/bassosimone/runtimex"
	"github.com/samber/lo"
)

// Must returns value or panics if err is not nil.
//
// Use only where a failure is a programming error, for example when
// converting a literal that is known to be valid.
func Must[A any](value A, err error) A {
	return lo.Must(value, err)
}

// Must2 adapts a fallible two-argument function into one that panics on error.
//
// The result composes with [Curry] and [Flip], which only accept
// single-result functions.
func Must2[A, B, C any](f func(A, B) (C, error)) func(A, B) C {
	return func(a A, b B) C {
		return lo.Must(f(a, b))
	}
}

// MustFunc adapts a [Func] into a pure function that panics on error.
func MustFunc[A, B any](fn Func[A, B]) func(A) B {
	return func(input A) B {
		return runtimex.PanicOnError1(fn.Call(input))
	}
}
