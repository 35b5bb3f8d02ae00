// SPDX-License-Identifier: GPL-3.0-or-later

// Package fx provides generic combinators for building pipelines out of
// plain Go functions.
//
// # Core Abstraction
//
// The package is built around ordinary function values:
//
//	func(A) B
//
// Every combinator takes functions and returns a new function. None of
// them keeps state, performs I/O, or mutates its arguments, so the result
// can be shared freely between goroutines.
//
// # Available Combinators
//
// Application and composition:
//   - [Pipe]: applies a function to a value, for left-to-right reading order
//   - [Compose], [Compose3], [Compose4]: forward composition
//   - [ComposeBackward]: backward composition, useful when composing setters
//   - [Concat]: composes any number of functions from a type to itself
//   - [Identity] and [Const]: the trivial building blocks
//
// Restructuring arguments:
//   - [Curry] and [Curry3]: turn a multi-argument function into a chain of
//     single-argument functions
//   - [Uncurry] and [Uncurry3]: the inverse transformation
//   - [Flip]: swaps the two arguments of a curried function
//   - [Flip0]: moves the nullary call of a method-like function to the front
//   - [Zurry]: invokes a nullary function, collapsing it into its value
//
// Lenses over pairs:
//   - [First] and [Second]: lift a transformation on one component of a
//     [Pair] into a transformation on the whole pair
//   - [Both]: lifts two transformations at once
//
// Lifting over sequences:
//   - [MapOver]: element-wise transformation
//   - [FilterOver]: order-preserving selection
//   - [ReduceOver]: curried fold
//
// Effectful composition ("fish"):
//   - [ComposeWriter]: results paired with logs; logs are concatenated
//   - [ComposeOption]: comma-ok results; short-circuits on absence
//   - [ComposeSlice]: multiple results; flattened outer-then-inner
//   - [Chain2] through [Chain8]: [Func] results; short-circuits on error
//
// # Setters Compose Backwards
//
// Lenses such as [First] and [Second] have the shape
//
//	func(func(A) B) func(S) T
//
// that is, they lift a transformation on parts into a transformation on
// wholes. Composing two lifts focuses deeper into a nested structure, but
// the lifts must be composed in reverse order with respect to the
// structure they traverse. For example, to negate the boolean inside
// Pair[Pair[int, bool], string]:
//
//	negate := ComposeBackward(
//		First[Pair[int, bool], Pair[int, bool], string],
//		Second[int, bool, bool],
//	)(func(v bool) bool { return !v })
//
// # Observability
//
// The combinators never log. When a [Func] pipeline needs structured
// logging, wrap its stages with [ObserveFunc] (see [NewObserveFunc]), or
// drain the logs produced by a writer-style function with [EmitLogs].
// Both accept an [SLogger], which [*slog.Logger] satisfies. By default,
// logging is disabled.
//
// Use [NewSpanID] to generate a unique, time-ordered identifier (UUIDv7)
// and attach it to the logger with [*slog.Logger.With] to correlate the
// events emitted by the stages of a single pipeline.
//
// # Design Boundaries
//
// General n-ary currying, operator tokens, and any form of scheduling or
// resource management are out of scope.
package fx
