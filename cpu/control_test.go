package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ucode/io"
)

func newControlUnit(input string, code ...Instruction) *ControlUnit {
	dp := NewDataPath(WORD_BITS_DEFAULT, 64, code, nil, io.NewController(input))
	return NewControlUnit(dp)
}

type recorder struct {
	mpcs []int
}

func (rec *recorder) Trace(trace Trace) {
	rec.mpcs = append(rec.mpcs, trace.Mpc)
}

func TestControlFetch(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("", MakeMath(OP_ADD, 1, 2, 3), MakeHalt())
	assert.Equal(STATE_FETCH, cu.State())
	assert.Equal(0, cu.DataPath.Pc)

	outcome, err := cu.Step()
	assert.NoError(err)
	assert.Equal(OUTCOME_CONTINUE, outcome)
	assert.Equal(1, cu.DataPath.Pc)
	assert.Equal(1, cu.Mpc)
	assert.Equal(STATE_FETCH, cu.State())

	_, err = cu.Step()
	assert.NoError(err)
	assert.Equal(LINE_ADD, cu.Ir)
	assert.Equal(1, cu.Instructions)
	assert.Equal(STATE_DECODE, cu.State())

	rb, _ := cu.Operand(OPERAND_RB)
	r1, _ := cu.Operand(OPERAND_R1)
	r2, _ := cu.Operand(OPERAND_FIELD)
	assert.Equal([]int{1, 2, 3}, []int{rb, r1, r2})

	_, err = cu.Step()
	assert.NoError(err)
	assert.Equal(LINE_ADD, cu.Mpc)
	assert.Equal(STATE_EXECUTE, cu.State())
	assert.Equal(3, cu.Ticks)
	assert.Equal(11, cu.MicroOps)
}

func TestControlAdd(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("", MakeMath(OP_ADD, 1, 2, 3), MakeHalt())
	rec := &recorder{}
	cu.Tracer = rec

	require.NoError(t, cu.DataPath.Registers.Latch(2, 2))
	require.NoError(t, cu.DataPath.Registers.Latch(3, 3))

	outcome, err := cu.Run(0)
	assert.NoError(err)
	assert.Equal(OUTCOME_HALT, outcome)
	assert.Equal(STATE_HALTED, cu.State())
	assert.Equal(int64(5), cu.DataPath.Registers.Register[1])
	assert.Equal(FLAG_NONE, cu.DataPath.Alu.Flags)
	assert.Equal([]int{0, 1, 2, LINE_ADD, 0, 1, 2, LINE_HALT}, rec.mpcs)
	assert.Equal(Stats{Ticks: 8, Instructions: 2, MicroOps: 11 + 7 + 11 + 1}, cu.Stats)

	outcome, err = cu.Step()
	assert.ErrorIs(err, ErrStopped)
	assert.Equal(OUTCOME_HALT, outcome)
	assert.Equal(8, cu.Ticks)
}

func TestControlImmediate(t *testing.T) {
	table := [...]struct {
		op     Opcode
		left   int64
		imm    int
		result int64
	}{
		{OP_ADD, 40, 2, 42},
		{OP_SUB, 40, 50, -10},
		{OP_MUL, -3, 7, -21},
		{OP_AND, 0x1234, 0xff, 0x34},
	}

	for _, entry := range table {
		cu := newControlUnit("", MakeMathImm(entry.op, 4, 5, entry.imm), MakeHalt())
		require.NoError(t, cu.DataPath.Registers.Latch(5, entry.left))

		outcome, err := cu.Run(0)
		assert.NoError(t, err, entry.op)
		assert.Equal(t, OUTCOME_HALT, outcome, entry.op)
		assert.Equal(t, entry.result, cu.DataPath.Registers.Register[4], entry.op)
		assert.Equal(t, int64(entry.imm), cu.DataPath.Registers.Register[SCRATCH_REGISTER], entry.op)
	}
}

func TestControlBranch(t *testing.T) {
	table := [...]struct {
		op    Opcode
		rb    int64
		r1    int64
		taken bool
	}{
		{OP_BEQ, 4, 4, true},
		{OP_BEQ, 4, 5, false},
		{OP_BNE, 4, 5, true},
		{OP_BNE, 4, 4, false},
		{OP_BLT, 1, 2, true},
		{OP_BLT, 2, 1, false},
		{OP_BLT, 2, 2, false},
		{OP_BLT, -5, 3, true},
		{OP_BGT, 3, 2, true},
		{OP_BGT, 2, 3, false},
		{OP_BGT, 2, 2, false},
		{OP_BGT, 0, -1, true},
	}

	for _, entry := range table {
		// 0: branch r1, r2, 2
		// 1: add r3, r0, #1
		// 2: halt
		cu := newControlUnit("",
			MakeBranch(entry.op, 1, 2, 2),
			MakeMathImm(OP_ADD, 3, 0, 1),
			MakeHalt(),
		)
		require.NoError(t, cu.DataPath.Registers.Latch(1, entry.rb))
		require.NoError(t, cu.DataPath.Registers.Latch(2, entry.r1))

		outcome, err := cu.Run(0)
		assert.NoError(t, err, entry)
		assert.Equal(t, OUTCOME_HALT, outcome, entry)
		assert.Equal(t, 1, cu.Stride, entry)

		skipped := cu.DataPath.Registers.Register[3] == 0
		assert.Equal(t, entry.taken, skipped, entry)
		assert.Equal(t, 3, cu.DataPath.Pc, entry)
	}
}

func TestControlStride(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("")
	cu.Mpc = 10

	_, _, err := cu.DataPath.Alu.Compute(3, 3, ALU_OP_SUB)
	assert.NoError(err)

	_, err = cu.Execute(SIG_SEL_TWICE_INC_IF_Z)
	assert.NoError(err)
	assert.Equal(2, cu.Stride)

	_, err = cu.Execute(SIG_SEL_TWICE_INC_IF_N)
	assert.NoError(err)
	assert.Equal(1, cu.Stride)

	_, err = cu.Execute(SIG_SEL_TWICE_INC_IF_Z)
	assert.NoError(err)
	_, err = cu.Execute(SIG_SEL_MPC_INC)
	assert.NoError(err)
	_, err = cu.Execute(SIG_LATCH_MPC)
	assert.NoError(err)
	assert.Equal(12, cu.Mpc)
	assert.Equal(1, cu.Stride)

	_, err = cu.Execute(SIG_LATCH_MPC)
	assert.NoError(err)
	assert.Equal(13, cu.Mpc)

	_, err = cu.Execute(SIG_SEL_TWICE_INC_IF_Z)
	assert.NoError(err)
	_, err = cu.Execute(SIG_SEL_ONE_INC)
	assert.NoError(err)
	assert.Equal(1, cu.Stride)

	_, err = cu.Execute(SIG_SEL_MPC_ZERO)
	assert.NoError(err)
	_, err = cu.Execute(SIG_LATCH_MPC)
	assert.NoError(err)
	assert.Equal(MPC_FETCH, cu.Mpc)
}

func TestControlInvalid(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("")

	_, err := cu.Operand(3)
	assert.ErrorIs(err, ErrOperandIndex)
	_, err = cu.Operand(-1)
	assert.ErrorIs(err, ErrOperandIndex)

	_, err = cu.Execute(Signal(999))
	assert.ErrorIs(err, ErrSignal)

	cu.MpcMux = SIG_HALT
	_, err = cu.Execute(SIG_LATCH_MPC)
	assert.ErrorIs(err, ErrMuxInvalid)

	assert.ErrorIs(cu.DataPath.SelectPc(SIG_SEL_MPC_IR), ErrMuxInvalid)
	assert.ErrorIs(cu.DataPath.SelectSource(SIG_SEL_PC_INC), ErrMuxInvalid)

	// The source mux powers up unselected.
	_, err = cu.Execute(SIG_LATCH_REG1)
	assert.ErrorIs(err, ErrMuxInvalid)

	_, err = cu.Execute(SIG_SEL_SRC_CU)
	assert.NoError(err)
	cu.DataPath.CuData = 9
	_, err = cu.Execute(SIG_LATCH_REG1)
	assert.NoError(err)
	assert.Equal(int64(9), cu.DataPath.Registers.Register[1])

	_, err = cu.Execute(SIG_LATCH_REG0)
	assert.ErrorIs(err, ErrRegisterImmutable)

	halt, err := cu.Execute(SIG_HALT)
	assert.NoError(err)
	assert.True(halt)
}

func TestControlFault(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("", MakeMathImm(OP_ADD, 0, 0, 1), MakeHalt())

	outcome, err := cu.Run(0)
	assert.Equal(OUTCOME_FAULT, outcome)
	assert.ErrorIs(err, ErrRegisterImmutable)

	var step *ErrStep
	require.True(t, errors.As(err, &step))
	assert.Equal(LINE_ADD_IMM+1, step.Mpc)
	assert.Equal(SIG_LATCH_REG, step.Signal)

	assert.Equal(STATE_FAULTED, cu.State())
	assert.Equal(err, cu.Err())

	ticks := cu.Ticks
	outcome, err = cu.Step()
	assert.Equal(OUTCOME_FAULT, outcome)
	assert.ErrorIs(err, ErrStopped)
	assert.Equal(ticks, cu.Ticks)
}

func TestControlMemory(t *testing.T) {
	assert := assert.New(t)

	// Echo two characters, then store and reload a word.
	cu := newControlUnit("hi",
		MakeMathImm(OP_ADD, 2, 0, OUTPUT_CELL_ADDRESS),
		MakeLoadAddr(1, INPUT_CELL_ADDRESS),
		MakeStore(1, 2),
		MakeLoad(1, 0),
		MakeStoreReg(2, 1),
		MakeMathImm(OP_ADD, 5, 0, 20),
		MakeStore(1, 5),
		MakeLoadAddr(6, 20),
		MakeHalt(),
	)

	outcome, err := cu.Run(0)
	assert.NoError(err)
	assert.Equal(OUTCOME_HALT, outcome)
	assert.Equal([]int64{'h', 'i'}, cu.DataPath.IO.Output)
	assert.Equal(int64('i'), cu.DataPath.Data.Cells[20])
	assert.Equal(int64('i'), cu.DataPath.Registers.Register[6])
	assert.Equal([]int64{io.INPUT_SENTINEL}, cu.DataPath.IO.Input.Pending())
}

func TestControlInputExhausted(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("",
		MakeLoadAddr(1, INPUT_CELL_ADDRESS),
		MakeLoadAddr(1, INPUT_CELL_ADDRESS),
		MakeHalt(),
	)

	outcome, err := cu.Run(0)
	assert.Equal(OUTCOME_FAULT, outcome)
	assert.True(IsInputExhausted(err))
	assert.False(IsInputExhausted(ErrSignal))
}

func TestControlTimeout(t *testing.T) {
	assert := assert.New(t)

	cu := newControlUnit("", MakeJump(0))

	outcome, err := cu.Run(7)
	assert.NoError(err)
	assert.Equal(OUTCOME_TIMEOUT, outcome)
	assert.Equal(7, cu.Ticks)
	assert.Equal(STATE_EXECUTE, cu.State())

	outcome, err = cu.Run(8)
	assert.NoError(err)
	assert.Equal(OUTCOME_TIMEOUT, outcome)
	assert.Equal(8, cu.Ticks)
	assert.Equal(2, cu.Instructions)
}
