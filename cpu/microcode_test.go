package cpu

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicrocodeDecode(t *testing.T) {
	table := [...]struct {
		op    Opcode
		lines [2]int
	}{
		{OP_NOP, [2]int{LINE_NOP, LINE_NOP}},
		{OP_HALT, [2]int{LINE_HALT, LINE_HALT}},
		{OP_ADD, [2]int{LINE_ADD, LINE_ADD_IMM}},
		{OP_SUB, [2]int{LINE_SUB, LINE_SUB_IMM}},
		{OP_MUL, [2]int{LINE_MUL, LINE_MUL_IMM}},
		{OP_AND, [2]int{LINE_AND, LINE_AND_IMM}},
		{OP_LOAD_WORD, [2]int{LINE_LW, LINE_LW_ADDR}},
		{OP_WRITE_WORD, [2]int{LINE_SW, LINE_SW_REG}},
		{OP_BEQ, [2]int{LINE_BEQ, LINE_BEQ}},
		{OP_BNE, [2]int{LINE_BNE, LINE_BNE}},
		{OP_BGT, [2]int{LINE_BGT, LINE_BGT}},
		{OP_BLT, [2]int{LINE_BLT, LINE_BLT}},
		{OP_JUMP, [2]int{LINE_JUMP, LINE_JUMP}},
	}

	for _, entry := range table {
		for flag, expected := range entry.lines {
			line, err := Decode(entry.op, flag)
			assert.NoError(t, err, entry.op)
			assert.Equal(t, expected, line, entry.op)
			assert.Less(t, line, len(Microcode))
		}
	}

	_, err := Decode(Opcode(0x42), 0)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, ErrOpcodeFlag{Opcode: Opcode(0x42), Flag: 0}, err)

	_, err = Decode(OP_ADD, 2)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestMicrocodeFetch(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]Signal{SIG_SEL_ONE_INC, SIG_SEL_PC_INC, SIG_LATCH_PC, SIG_SEL_MPC_INC, SIG_LATCH_MPC}, Microcode[MPC_FETCH])
	assert.Equal([]Signal{SIG_LATCH_IR, SIG_LATCH_OPERANDS, SIG_SEL_MPC_INC, SIG_LATCH_MPC}, Microcode[1])
	assert.Equal([]Signal{SIG_SEL_MPC_IR, SIG_LATCH_MPC}, Microcode[MPC_DECODE])
}

func TestMicrocodeRows(t *testing.T) {
	assert := assert.New(t)

	for mpc, row := range Microcode {
		assert.NotEmpty(row, mpc)

		for _, sig := range row {
			assert.False(strings.HasPrefix(sig.String(), "Signal("), "mpc %d: %v", mpc, sig)
		}

		// Every row either halts or ends by latching the mpc.
		last := row[len(row)-1]
		assert.True(last == SIG_HALT || last == SIG_LATCH_MPC, "mpc %d", mpc)

		// Selections precede the latches that use them.
		if n := slices.Index(row, SIG_LATCH_PC); n >= 0 {
			assert.True(slices.Contains(row[:n], SIG_SEL_PC_INC) || slices.Contains(row[:n], SIG_SEL_PC_ADDR), "mpc %d", mpc)
		}
		if n := slices.Index(row, SIG_LATCH_REG); n >= 0 {
			assert.True(slices.ContainsFunc(row[:n], func(sig Signal) bool {
				return sig == SIG_SEL_SRC_ALU || sig == SIG_SEL_SRC_MEM || sig == SIG_SEL_SRC_CU
			}), "mpc %d", mpc)
		}
		assert.NotContains(row, SIG_LATCH_REG0, "mpc %d", mpc)
	}

	_, ok := MicroStep(-1)
	assert.False(ok)
	_, ok = MicroStep(len(Microcode))
	assert.False(ok)
	signals, ok := MicroStep(LINE_HALT)
	assert.True(ok)
	assert.Equal([]Signal{SIG_HALT}, signals)
}

func TestMicrocodeBranchRows(t *testing.T) {
	table := [...]struct {
		line   int
		test   Signal
		commit int
		fall   int
	}{
		{LINE_BEQ, SIG_SEL_TWICE_INC_IF_Z, LINE_BEQ + 2, LINE_BEQ + 1},
		{LINE_BNE, SIG_SEL_TWICE_INC_IF_Z, LINE_BNE + 1, LINE_BNE + 2},
		{LINE_BGT, SIG_SEL_TWICE_INC_IF_N, LINE_BGT + 2, LINE_BGT + 1},
		{LINE_BLT, SIG_SEL_TWICE_INC_IF_N, LINE_BLT + 2, LINE_BLT + 1},
	}

	for _, entry := range table {
		row := Microcode[entry.line]
		test := slices.Index(row, entry.test)
		alu := slices.Index(row, SIG_ALU_SUB)
		assert.True(t, alu >= 0 && alu < test, "line %d", entry.line)
		assert.Equal(t, []Signal{SIG_SEL_MPC_INC, SIG_LATCH_MPC}, row[len(row)-2:])

		assert.Contains(t, Microcode[entry.commit], SIG_SEL_PC_ADDR)
		assert.NotContains(t, Microcode[entry.fall], SIG_LATCH_PC)
		assert.Equal(t, []Signal{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC}, Microcode[entry.fall])
	}
}
