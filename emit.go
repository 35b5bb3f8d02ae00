// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import "log/slog"

// EmitLogs runs a writer-style function and forwards its logs to logger.
//
// Each entry returned by f is emitted, in order, as a [slog.LevelDebug]
// event with the given msg and the entry and index attributes. The
// returned function yields only the value, so it can be used with [Compose]
// at the edge of a pipeline built with [ComposeWriter].
func EmitLogs[A, B, W any](logger SLogger, msg string, f func(A) (B, []W)) func(A) B {
	return func(a A) B {
		b, logs := f(a)
		for idx, entry := range logs {
			logger.Debug(msg, slog.Any("entry", entry), slog.Int("index", idx))
		}
		return b
	}
}
