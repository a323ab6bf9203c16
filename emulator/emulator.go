// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ucode/config"
	"github.com/ezrec/ucode/cpu"
	"github.com/ezrec/ucode/internal"
	"github.com/ezrec/ucode/io"
)

var _emulator_defines = map[string]string{
	"DEFAULT_TICK_LIMIT": fmt.Sprintf("%v", config.DEFAULT_TICK_LIMIT),
	"DEFAULT_DATA_SIZE":  fmt.Sprintf("%v", config.DEFAULT_DATA_SIZE),
	"WORD_BITS_DEFAULT":  fmt.Sprintf("%v", cpu.WORD_BITS_DEFAULT),
}

// Emulator state. Control unit + datapath + I/O controller.
type Emulator struct {
	Verbose bool          // If set, enables verbose logging.
	Config  config.Config // Machine configuration, applied on Reset.
	Program *cpu.Program  // Instruction and data images.
	Input   string        // Input stream, seeded into the input buffer.
	Echo    io.Channel    // If set, receives output as it is written.

	Outcome cpu.Outcome // Outcome of the last tick.

	*cpu.ControlUnit // Reference to the running machine.
}

// Result is the summary of a completed run.
type Result struct {
	Outcome cpu.Outcome
	Stats   cpu.Stats
	Output  []int64
}

// Text renders the output as characters.
func (res *Result) Text() string {
	ctl := io.Controller{Output: res.Output}
	return ctl.Text()
}

// NewEmulator creates a new emulator with the default configuration.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Config:  config.Default(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines, in name order.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Merge(internal.IterSeq2Concat(
		maps.All(_emulator_defines),
		cpu.Defines(),
	))
}

// Reset builds a fresh machine from the program, input and configuration.
func (emu *Emulator) Reset() (err error) {
	err = emu.Config.Validate()
	if err != nil {
		return
	}

	if emu.Config.Verbose {
		emu.Verbose = true
	}

	ctl := io.NewController(emu.Input)
	ctl.Echo = emu.Echo

	dp := cpu.NewDataPath(emu.Config.WordBits, emu.Config.DataSize,
		emu.Program.Instructions, emu.Program.Data, ctl)

	emu.ControlUnit = cpu.NewControlUnit(dp)
	emu.Outcome = cpu.OUTCOME_CONTINUE

	return
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	if emu.ControlUnit == nil {
		return 0
	}
	return emu.DataPath.Pc
}

// Instruction returns the instruction at the program counter.
func (emu *Emulator) Instruction() (ins cpu.Instruction, ok bool) {
	return emu.Program.At(emu.Pc())
}

// Tick executes a single microcode row. done is set once the machine has
// halted, faulted or exhausted the tick limit.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.ControlUnit == nil {
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	cu := emu.ControlUnit
	switch _, tracing := cu.Tracer.(*LogTracer); {
	case !emu.Verbose:
		cu.Tracer = nil
	case !tracing:
		cu.Tracer = &LogTracer{Program: emu.Program}
	}

	if limit := emu.Config.TickLimit; limit > 0 && cu.Ticks >= limit {
		emu.Outcome = cpu.OUTCOME_TIMEOUT
		done = true
		return
	}

	pc, mpc, tick := cu.DataPath.Pc, cu.Mpc, cu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Mpc: mpc, Tick: tick, Err: err}
		}
	}()

	emu.Outcome, err = cu.Step()
	done = err != nil || emu.Outcome != cpu.OUTCOME_CONTINUE

	return
}

// Run resets the machine and ticks it until done.
func (emu *Emulator) Run() (result Result, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
	}

	result = emu.Result()
	return
}

// Result returns the summary of the run so far.
func (emu *Emulator) Result() (result Result) {
	result.Outcome = emu.Outcome
	if emu.ControlUnit == nil {
		return
	}

	result.Stats = emu.Stats
	result.Output = append([]int64{}, emu.DataPath.IO.Output...)
	return
}
