package cpu

import (
	"errors"

	"github.com/ezrec/ucode/io"
)

// State is the control unit state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_FETCH   = State(0) // fetch
	STATE_DECODE  = State(1) // decode
	STATE_EXECUTE = State(2) // execute
	STATE_HALTED  = State(3) // halted
	STATE_FAULTED = State(4) // faulted
)

// Outcome is the result of executing one microcode row.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_CONTINUE = Outcome(0) // continue
	OUTCOME_HALT     = Outcome(1) // halt
	OUTCOME_FAULT    = Outcome(2) // fault
	OUTCOME_TIMEOUT  = Outcome(3) // timeout
)

// Operand field indexes in the operand register.
const (
	OPERAND_RB    = 0
	OPERAND_R1    = 1
	OPERAND_FIELD = 2
)

// Trace is the record of one executed microcode row.
type Trace struct {
	Tick    int
	Mpc     int
	Pc      int
	Signals []Signal
}

// Tracer receives a Trace for every executed microcode row.
type Tracer interface {
	Trace(trace Trace)
}

// Stats are the execution counters of a control unit.
type Stats struct {
	Ticks        int // Microcode rows executed.
	Instructions int // Instructions fetched.
	MicroOps     int // Signals asserted.
}

// ControlUnit sequences the microcode ROM against a datapath.
type ControlUnit struct {
	DataPath *DataPath
	Tracer   Tracer // If set, receives every executed row.

	Ir       int    // Decoded microcode entry line.
	Operands uint32 // 24-bit operand register: rb, r1, field.
	Mpc      int    // Micro-program counter.
	MpcMux   Signal // SIG_SEL_MPC_ZERO, SIG_SEL_MPC_INC or SIG_SEL_MPC_IR.
	Stride   int    // Next SIG_SEL_MPC_INC increment, 1 or 2.

	Stats

	halted bool
	err    error
}

// NewControlUnit creates a control unit at the start of the fetch
// sequence.
func NewControlUnit(dp *DataPath) (cu *ControlUnit) {
	cu = &ControlUnit{
		DataPath: dp,
		Mpc:      MPC_FETCH,
		MpcMux:   SIG_SEL_MPC_INC,
		Stride:   1,
	}
	return
}

// State returns the current state.
func (cu *ControlUnit) State() State {
	switch {
	case cu.err != nil:
		return STATE_FAULTED
	case cu.halted:
		return STATE_HALTED
	case cu.Mpc < MPC_DECODE:
		return STATE_FETCH
	case cu.Mpc == MPC_DECODE:
		return STATE_DECODE
	}
	return STATE_EXECUTE
}

// Err returns the fault that stopped the control unit, if any.
func (cu *ControlUnit) Err() error {
	return cu.err
}

// Operand returns field index of the operand register.
func (cu *ControlUnit) Operand(index int) (value int, err error) {
	switch index {
	case OPERAND_RB:
		value = int((cu.Operands >> (RB_SHIFT - FIELD_SHIFT)) & REG_MASK)
	case OPERAND_R1:
		value = int((cu.Operands >> (R1_SHIFT - FIELD_SHIFT)) & REG_MASK)
	case OPERAND_FIELD:
		value = int(cu.Operands & FIELD_MASK)
	default:
		err = ErrOperand(index)
	}
	return
}

// Fetch returns the instruction addressed by the program counter.
func (cu *ControlUnit) Fetch() (ins Instruction, err error) {
	dp := cu.DataPath
	return dp.Instructions.Read(dp.Pc)
}

// Step executes the ROM row at mpc. Signals are applied in row order,
// so later signals observe the effects of earlier ones.
func (cu *ControlUnit) Step() (outcome Outcome, err error) {
	switch {
	case cu.err != nil, cu.halted:
		err = ErrStopped
		outcome = OUTCOME_FAULT
		if cu.halted {
			outcome = OUTCOME_HALT
		}
		return
	}

	mpc := cu.Mpc
	signals, ok := MicroStep(mpc)
	if !ok {
		err = cu.fault(&ErrStep{Mpc: mpc, Signal: SIG_LATCH_MPC, Err: ErrAddress{Memory: "microcode", Address: mpc}})
		outcome = OUTCOME_FAULT
		return
	}

	if cu.Tracer != nil {
		cu.Tracer.Trace(Trace{Tick: cu.Ticks, Mpc: mpc, Pc: cu.DataPath.Pc, Signals: signals})
	}

	for _, sig := range signals {
		var halt bool
		halt, err = cu.Execute(sig)
		cu.MicroOps++
		if err != nil {
			err = cu.fault(&ErrStep{Mpc: mpc, Signal: sig, Err: err})
			outcome = OUTCOME_FAULT
			break
		}
		if halt {
			cu.halted = true
			outcome = OUTCOME_HALT
			break
		}
	}

	cu.Ticks++

	return
}

func (cu *ControlUnit) fault(err error) error {
	cu.err = err
	return err
}

// Execute asserts a single signal.
func (cu *ControlUnit) Execute(sig Signal) (halt bool, err error) {
	dp := cu.DataPath

	switch sig {
	case SIG_HALT:
		halt = true
	case SIG_ALU_ADD:
		_, _, err = dp.Alu.Compute(dp.Bus.Left(), dp.Bus.Right(), ALU_OP_ADD)
	case SIG_ALU_SUB:
		_, _, err = dp.Alu.Compute(dp.Bus.Left(), dp.Bus.Right(), ALU_OP_SUB)
	case SIG_ALU_MUL:
		_, _, err = dp.Alu.Compute(dp.Bus.Left(), dp.Bus.Right(), ALU_OP_MUL)
	case SIG_ALU_AND:
		_, _, err = dp.Alu.Compute(dp.Bus.Left(), dp.Bus.Right(), ALU_OP_AND)
	case SIG_LATCH_IR:
		err = cu.latchIr()
	case SIG_LATCH_OPERANDS:
		err = cu.latchOperands()
	case SIG_LATCH_PC:
		err = dp.LatchPc()
	case SIG_LATCH_MPC:
		err = cu.latchMpc()
	case SIG_LATCH_READ_MEM:
		err = dp.Data.LatchRead()
	case SIG_LATCH_WRITE_MEM:
		err = dp.Data.LatchWrite()
	case SIG_SEL_MPC_ZERO, SIG_SEL_MPC_INC, SIG_SEL_MPC_IR:
		cu.MpcMux = sig
	case SIG_SEL_PC_ADDR, SIG_SEL_PC_INC:
		err = dp.SelectPc(sig)
	case SIG_SEL_SRC_MEM, SIG_SEL_SRC_ALU, SIG_SEL_SRC_CU:
		err = dp.SelectSource(sig)
	case SIG_LATCH_REG:
		err = cu.latchOperand(OPERAND_RB)
	case SIG_SEL_L_RB:
		err = cu.selectOperand(OPERAND_RB, dp.Registers.SelectLeft)
	case SIG_SEL_L_R1:
		err = cu.selectOperand(OPERAND_R1, dp.Registers.SelectLeft)
	case SIG_SEL_L_R2:
		err = cu.selectOperand(OPERAND_FIELD, dp.Registers.SelectLeft)
	case SIG_SEL_R_RB:
		err = cu.selectOperand(OPERAND_RB, dp.Registers.SelectRight)
	case SIG_SEL_R_R1:
		err = cu.selectOperand(OPERAND_R1, dp.Registers.SelectRight)
	case SIG_SEL_R_R2:
		err = cu.selectOperand(OPERAND_FIELD, dp.Registers.SelectRight)
	case SIG_SEL_ONE_INC:
		cu.Stride = 1
	case SIG_SEL_TWICE_INC_IF_Z:
		cu.Stride = 1
		if dp.Alu.Flags.Zero() {
			cu.Stride = 2
		}
	case SIG_SEL_TWICE_INC_IF_N:
		cu.Stride = 1
		if dp.Alu.Flags.Negative() {
			cu.Stride = 2
		}
	default:
		if index, ok := sig.LatchIndex(); ok {
			err = dp.LatchRegister(index)
		} else if index, ok := sig.LeftIndex(); ok {
			err = dp.Registers.SelectLeft(index)
		} else if index, ok := sig.RightIndex(); ok {
			err = dp.Registers.SelectRight(index)
		} else {
			err = ErrSignal
		}
	}

	return
}

// latchMpc loads the micro-program counter from the source chosen by
// MpcMux. An increment consumes the stride and resets it to 1.
func (cu *ControlUnit) latchMpc() (err error) {
	switch cu.MpcMux {
	case SIG_SEL_MPC_INC:
		cu.Mpc += cu.Stride
		cu.Stride = 1
	case SIG_SEL_MPC_IR:
		cu.Mpc = cu.Ir
	case SIG_SEL_MPC_ZERO:
		cu.Mpc = MPC_FETCH
	default:
		err = ErrMux{Mux: "mpc", Signal: cu.MpcMux}
	}
	return
}

func (cu *ControlUnit) latchIr() (err error) {
	ins, err := cu.Fetch()
	if err != nil {
		return
	}

	line, err := Decode(ins.Opcode(), ins.Flag())
	if err != nil {
		return
	}

	cu.Ir = line
	cu.Instructions++
	return
}

func (cu *ControlUnit) latchOperands() (err error) {
	ins, err := cu.Fetch()
	if err != nil {
		return
	}

	cu.Operands = ins.Operands()

	field, _ := cu.Operand(OPERAND_FIELD)
	cu.DataPath.CuData = cu.DataPath.Alu.Range.Wrap(int64(field))
	cu.DataPath.CuAddress = field

	return
}

func (cu *ControlUnit) latchOperand(operand int) (err error) {
	index, err := cu.Operand(operand)
	if err != nil {
		return
	}

	return cu.DataPath.LatchRegister(index)
}

func (cu *ControlUnit) selectOperand(operand int, sel func(index int) error) (err error) {
	index, err := cu.Operand(operand)
	if err != nil {
		return
	}

	return sel(index)
}

// Run steps the control unit until it halts, faults or has executed
// limit ticks. A limit of zero or less means no limit.
func (cu *ControlUnit) Run(limit int) (outcome Outcome, err error) {
	for limit <= 0 || cu.Ticks < limit {
		outcome, err = cu.Step()
		if outcome != OUTCOME_CONTINUE || err != nil {
			return
		}
	}

	outcome = OUTCOME_TIMEOUT
	return
}

// IsInputExhausted returns true if err is the input buffer running dry,
// the normal end of programs that read until EOF.
func IsInputExhausted(err error) bool {
	return errors.Is(err, io.ErrBufferEmpty)
}
