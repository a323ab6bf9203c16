package cpu

import (
	"github.com/ezrec/ucode/io"
)

// DataPath owns the functional units and resolves the program counter
// and register-write source multiplexers.
type DataPath struct {
	Alu          *Alu
	Bus          *Bus
	Registers    *RegisterFile
	Instructions *InstructionMemory
	Data         *DataMemory
	IO           *io.Controller

	Pc     int    // Program counter.
	PcMux  Signal // SIG_SEL_PC_ADDR or SIG_SEL_PC_INC.
	SrcMux Signal // SIG_SEL_SRC_MEM, SIG_SEL_SRC_ALU or SIG_SEL_SRC_CU.

	CuData    int64 // Immediate output of the operand register.
	CuAddress int   // Address output of the operand register.
}

// NewDataPath wires a datapath around a program image and an I/O
// controller.
func NewDataPath(bits int, size int, code []Instruction, data []int64, ctl *io.Controller) (dp *DataPath) {
	bus := &Bus{}
	alu := NewAlu(bits)

	wrapped := make([]int64, len(data))
	for n, value := range data {
		wrapped[n] = alu.Range.Wrap(value)
	}

	dp = &DataPath{
		Alu:          alu,
		Bus:          bus,
		Registers:    NewRegisterFile(bus),
		Instructions: &InstructionMemory{Cells: code},
		Data:         NewDataMemory(size, wrapped, ctl, bus),
		IO:           ctl,
		PcMux:        SIG_SEL_PC_INC,
	}

	return
}

// SelectPc sets the program counter mux.
func (dp *DataPath) SelectPc(sig Signal) (err error) {
	switch sig {
	case SIG_SEL_PC_ADDR, SIG_SEL_PC_INC:
		dp.PcMux = sig
	default:
		err = ErrMux{Mux: "pc", Signal: sig}
	}
	return
}

// LatchPc loads the program counter from the source chosen by PcMux.
func (dp *DataPath) LatchPc() (err error) {
	switch dp.PcMux {
	case SIG_SEL_PC_ADDR:
		dp.Pc = dp.CuAddress
	case SIG_SEL_PC_INC:
		dp.Pc++
	default:
		err = ErrMux{Mux: "pc", Signal: dp.PcMux}
	}
	return
}

// SelectSource sets the register-write source mux.
func (dp *DataPath) SelectSource(sig Signal) (err error) {
	switch sig {
	case SIG_SEL_SRC_MEM, SIG_SEL_SRC_ALU, SIG_SEL_SRC_CU:
		dp.SrcMux = sig
	default:
		err = ErrMux{Mux: "data source", Signal: sig}
	}
	return
}

// Source returns the value presented to the register file write port.
func (dp *DataPath) Source() (value int64, err error) {
	switch dp.SrcMux {
	case SIG_SEL_SRC_MEM:
		value = dp.Data.Out
	case SIG_SEL_SRC_ALU:
		value = dp.Alu.Result
	case SIG_SEL_SRC_CU:
		value = dp.CuData
	default:
		err = ErrMux{Mux: "data source", Signal: dp.SrcMux}
	}
	return
}

// LatchRegister writes the selected source into register rN.
func (dp *DataPath) LatchRegister(index int) (err error) {
	value, err := dp.Source()
	if err != nil {
		return
	}

	return dp.Registers.Latch(index, value)
}
