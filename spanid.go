// SPDX-License-Identifier: GPL-3.0-or-later

package fx

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// A span is a single run of a pipeline built with [ObserveFunc] stages,
// from its input to its result or its first error.
//
// We recommend attaching the span ID to the logger so that all the
// events emitted by the stages of the pipeline can be correlated.
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
