// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/ucode/translate"
)

var f = translate.From

// ErrRuntime indicates the machine location of a runtime error.
type ErrRuntime struct {
	Pc   int
	Mpc  int
	Tick int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d mpc %d tick %d: %v", err.Pc, err.Mpc, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
