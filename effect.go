// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import "github.com/samber/lo"

// ComposeWriter composes two functions returning a value along with logs.
//
// The composed function returns g's value and the concatenation of the
// logs, with f's entries preceding g's. The returned slice is always
// freshly allocated and never aliases the slices returned by f or g.
func ComposeWriter[A, B, C, W any](f func(A) (B, []W), g func(B) (C, []W)) func(A) (C, []W) {
	return func(a A) (C, []W) {
		b, logs1 := f(a)
		c, logs2 := g(b)
		logs := make([]W, 0, len(logs1)+len(logs2))
		logs = append(logs, logs1...)
		logs = append(logs, logs2...)
		return c, logs
	}
}

// ComposeOption composes two functions returning an optional value.
//
// An optional value uses the comma-ok idiom: the boolean is false when
// there is no result. If f yields no result, g is not called and the
// composed function returns the zero value of C and false.
func ComposeOption[A, B, C any](f func(A) (B, bool), g func(B) (C, bool)) func(A) (C, bool) {
	return func(a A) (C, bool) {
		b, ok := f(a)
		if !ok {
			var zero C
			return zero, false
		}
		return g(b)
	}
}

// ComposeSlice composes two functions returning multiple results.
//
// The composed function applies g to each value produced by f and
// flattens the results: all of g's outputs for the first value come
// before any of g's outputs for the second value.
func ComposeSlice[A, B, C any](f func(A) []B, g func(B) []C) func(A) []C {
	return func(a A) []C {
		return lo.FlatMap(f(a), func(b B, _ int) []C {
			return g(b)
		})
	}
}
