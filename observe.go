//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/conn.go
//

package fx

import (
	"log/slog"
	"time"
)

// NewObserveFunc returns a new [*ObserveFunc] wrapping fn.
//
// The cfg argument contains the common configuration.
//
// The name argument identifies the stage in the emitted events.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewObserveFunc[A, B any](cfg *Config, name string, logger SLogger, fn Func[A, B]) *ObserveFunc[A, B] {
	return &ObserveFunc[A, B]{
		ErrClassifier: cfg.ErrClassifier,
		Func:          fn,
		Logger:        logger,
		Name:          name,
		TimeNow:       cfg.TimeNow,
	}
}

// ObserveFunc wraps a [Func] to log the start and the end of each call.
//
// Each call emits a callStart event before invoking the wrapped [Func] and
// a callDone event after it returns. The result and the error are passed
// through unchanged.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ObserveFunc[A, B any] struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewObserveFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Func is the wrapped [Func].
	//
	// Set by [NewObserveFunc] to the user-provided value.
	Func Func[A, B]

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewObserveFunc] to the user-provided logger.
	Logger SLogger

	// Name identifies the stage in log events.
	//
	// Set by [NewObserveFunc] to the user-provided value.
	Name string

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewObserveFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[int, int] = &ObserveFunc[int, int]{}

// Call invokes the wrapped [Func] and logs the call lifecycle.
func (op *ObserveFunc[A, B]) Call(input A) (B, error) {
	t0 := op.TimeNow()
	op.logCallStart(t0)
	res, err := op.Func.Call(input)
	op.logCallDone(t0, err)
	return res, err
}

func (op *ObserveFunc[A, B]) logCallStart(t0 time.Time) {
	op.Logger.Info(
		"callStart",
		slog.String("name", op.Name),
		slog.Time("t", t0),
	)
}

func (op *ObserveFunc[A, B]) logCallDone(t0 time.Time, err error) {
	op.Logger.Info(
		"callDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("name", op.Name),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
