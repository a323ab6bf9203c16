// Package io provides the I/O controller of the emulated machine and the
// character channels it is built from.
//
// The controller owns a FIFO input buffer that is seeded once from the
// input stream, and an append-only output buffer. Data memory cell 0 pops
// the input buffer, cell 1 pushes the output buffer.
package io

import (
	"iter"
)

// Channel defines the interface for all character channels. Values are
// character codes.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
