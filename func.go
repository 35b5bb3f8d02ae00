// SPDX-License-Identifier: GPL-3.0-or-later

package fx

// Func is a generic fallible operation that accepts an input and returns a result.
//
// Func instances can be composed using [Chain2], [Chain3], etc. to create
// type-safe pipelines where the output of one operation flows to the input
// of the next and the first error short-circuits the rest.
//
// A Func returns either a valid result or an error. On error, callers
// must not rely on the value of the result.
type Func[A, B any] interface {
	Call(input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures.
type FuncAdapter[A, B any] func(input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(input A) (B, error) {
	return f(input)
}

// Lift turns a pure function into a [Func] that never fails.
func Lift[A, B any](f func(A) B) Func[A, B] {
	return FuncAdapter[A, B](func(input A) (B, error) {
		return f(input), nil
	})
}
