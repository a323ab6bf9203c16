package emulator

import (
	"slices"

	"github.com/ezrec/ucode/cpu"
)

// Snapshot is a copy of the architectural state of the machine.
type Snapshot struct {
	State     cpu.State
	Pc        int
	Mpc       int
	Flags     cpu.Flags
	Registers [cpu.REGISTER_COUNT]int64
	Data      []int64
	Input     []int64 // Unconsumed input.
	Output    []int64
	Stats     cpu.Stats
}

// Snapshot captures the current machine state.
func (emu *Emulator) Snapshot() (snap Snapshot) {
	cu := emu.ControlUnit
	if cu == nil {
		return
	}

	dp := cu.DataPath
	snap = Snapshot{
		State:     cu.State(),
		Pc:        dp.Pc,
		Mpc:       cu.Mpc,
		Flags:     dp.Alu.Flags,
		Registers: dp.Registers.Register,
		Data:      slices.Clone(dp.Data.Cells),
		Input:     dp.IO.Input.Pending(),
		Output:    slices.Clone(dp.IO.Output),
		Stats:     cu.Stats,
	}

	return
}
