// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeWriter(t *testing.T) {
	incrWithLog := func(x int) (int, []string) {
		return x + 1, []string{fmt.Sprintf("incr %d", x)}
	}
	squareWithLog := func(x int) (int, []string) {
		return x * x, []string{fmt.Sprintf("square %d", x), "done"}
	}

	t.Run("concatenates logs in call order", func(t *testing.T) {
		value, logs := ComposeWriter(incrWithLog, squareWithLog)(3)
		assert.Equal(t, 16, value)
		assert.Equal(t, []string{"incr 3", "square 4", "done"}, logs)
	})

	t.Run("is associative", func(t *testing.T) {
		left := ComposeWriter(ComposeWriter(incrWithLog, squareWithLog), incrWithLog)
		right := ComposeWriter(incrWithLog, ComposeWriter(squareWithLog, incrWithLog))
		v1, logs1 := left(2)
		v2, logs2 := right(2)
		assert.Equal(t, v1, v2)
		assert.Equal(t, logs1, logs2)
	})

	t.Run("does not alias the logs of the first stage", func(t *testing.T) {
		backing := make([]string, 1, 10)
		backing[0] = "first"
		f := func(x int) (int, []string) { return x, backing }
		g := func(x int) (int, []string) { return x, []string{"second"} }

		_, logs := ComposeWriter(f, g)(0)
		logs[0] = "mutated"

		assert.Equal(t, "first", backing[0])
		assert.Equal(t, "", backing[:2][1])
	})

	t.Run("empty logs", func(t *testing.T) {
		silent := func(x int) (int, []string) { return x, nil }
		value, logs := ComposeWriter(silent, silent)(5)
		assert.Equal(t, 5, value)
		assert.Empty(t, logs)
	})
}

func isEven(x int) (int, bool) {
	return x, x%2 == 0
}

func isDivisibleBy10(x int) (int, bool) {
	return x, x%10 == 0
}

func TestComposeOption(t *testing.T) {
	t.Run("both stages succeed", func(t *testing.T) {
		value, ok := ComposeOption(isEven, isDivisibleBy10)(10)
		require.True(t, ok)
		assert.Equal(t, 10, value)
	})

	t.Run("first stage yields no result", func(t *testing.T) {
		second := func(x int) (int, bool) {
			t.Fatal("second stage should not be called")
			return 0, false
		}
		value, ok := ComposeOption(isEven, second)(7)
		assert.False(t, ok)
		assert.Equal(t, 0, value)
	})

	t.Run("second stage yields no result", func(t *testing.T) {
		_, ok := ComposeOption(isEven, isDivisibleBy10)(4)
		assert.False(t, ok)
	})

	t.Run("returns the zero value on absence", func(t *testing.T) {
		parse := func(s string) (int, bool) {
			v, err := strconv.Atoi(s)
			return v, err == nil
		}
		describe := func(x int) (string, bool) { return strconv.Itoa(x), true }

		value, ok := ComposeOption(parse, describe)("nope")
		assert.False(t, ok)
		assert.Equal(t, "", value)
	})
}

func TestComposeSlice(t *testing.T) {
	t.Run("flattens outer then inner", func(t *testing.T) {
		neighbors := func(x int) []int { return []int{x - 1, x + 1} }
		labels := func(x int) []string { return []string{fmt.Sprintf("%d:a", x), fmt.Sprintf("%d:b", x)} }

		got := ComposeSlice(neighbors, labels)(10)
		assert.Equal(t, []string{"9:a", "9:b", "11:a", "11:b"}, got)
	})

	t.Run("empty first stage", func(t *testing.T) {
		none := func(x int) []int { return nil }
		got := ComposeSlice(none, func(x int) []int {
			t.Fatal("second stage should not be called")
			return nil
		})(1)
		assert.Empty(t, got)
	})

	t.Run("second stage may drop values", func(t *testing.T) {
		digits := func(x int) []int { return []int{1, 2, 3, 4} }
		evens := func(x int) []int {
			if x%2 == 0 {
				return []int{x}
			}
			return nil
		}
		assert.Equal(t, []int{2, 4}, ComposeSlice(digits, evens)(0))
	})
}
