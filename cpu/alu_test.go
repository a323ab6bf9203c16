package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAluCompute(t *testing.T) {
	table := [...]struct {
		bits   int
		left   int64
		right  int64
		op     AluOp
		result int64
		flags  Flags
	}{
		{32, 2, 3, ALU_OP_ADD, 5, FLAG_NONE},
		{32, 3, 3, ALU_OP_SUB, 0, FLAG_ZERO},
		{32, 2, 3, ALU_OP_SUB, -1, FLAG_NEGATIVE},
		{32, -4, 5, ALU_OP_MUL, -20, FLAG_NEGATIVE},
		{32, 0b1100, 0b1010, ALU_OP_AND, 0b1000, FLAG_NONE},
		{32, -1, 0xff, ALU_OP_AND, 0xff, FLAG_NONE},
		{32, math.MaxInt32, 1, ALU_OP_ADD, math.MinInt32, FLAG_NEGATIVE},
		{32, math.MinInt32, 1, ALU_OP_SUB, math.MaxInt32, FLAG_NONE},
		{32, 0x10000, 0x10000, ALU_OP_MUL, 0, FLAG_ZERO},
		{32, math.MaxInt32, math.MaxInt32, ALU_OP_MUL, 1, FLAG_NONE},
		{8, 127, 1, ALU_OP_ADD, -128, FLAG_NEGATIVE},
		{8, 16, 16, ALU_OP_MUL, 0, FLAG_ZERO},
		{8, -128, 1, ALU_OP_SUB, 127, FLAG_NONE},
		{16, 300, 300, ALU_OP_MUL, 24464, FLAG_NONE},
	}

	for _, entry := range table {
		alu := NewAlu(entry.bits)
		result, flags, err := alu.Compute(entry.left, entry.right, entry.op)
		assert.NoError(t, err, entry)
		assert.Equal(t, entry.result, result, entry)
		assert.Equal(t, entry.flags, flags, entry)
		assert.Equal(t, result, alu.Result)
		assert.Equal(t, flags, alu.Flags)
	}
}

func TestAluInvalid(t *testing.T) {
	assert := assert.New(t)

	alu := NewAlu(WORD_BITS_DEFAULT)
	_, _, err := alu.Compute(5, 5, ALU_OP_SUB)
	assert.NoError(err)

	_, _, err = alu.Compute(1, 1, AluOp(9))
	assert.ErrorIs(err, ErrAluOp)
	assert.Equal(FLAG_ZERO, alu.Flags)
	assert.Equal("AluOp(9)", AluOp(9).String())
}

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FLAG_ZERO, FlagsOf(0))
	assert.Equal(FLAG_NEGATIVE, FlagsOf(-7))
	assert.Equal(FLAG_NONE, FlagsOf(7))

	assert.True(FLAG_ZERO.Zero())
	assert.False(FLAG_ZERO.Negative())
	assert.True(FLAG_NEGATIVE.Negative())
	assert.False(FLAG_NONE.Zero())
	assert.False(FLAG_NONE.Negative())

	assert.Equal("Z", FLAG_ZERO.String())
	assert.Equal("N", FLAG_NEGATIVE.String())
	assert.Equal("-", FLAG_NONE.String())
	assert.Equal("?", Flags(3).String())
}

func TestRange(t *testing.T) {
	assert := assert.New(t)

	rng := WordRange(8)
	assert.Equal(Range{Min: -128, Max: 127}, rng)
	assert.True(rng.Contains(-128))
	assert.False(rng.Contains(128))

	assert.Equal(int64(0), rng.Wrap(256))
	assert.Equal(int64(127), rng.Wrap(-129))
	assert.Equal(int64(-1), rng.Wrap(255))
	assert.Equal(int64(1), rng.Wrap(257+512))

	rng = WordRange(32)
	assert.Equal(int64(math.MinInt32), rng.Min)
	assert.Equal(int64(math.MaxInt32), rng.Max)
	assert.Equal(int64(0), rng.Wrap(1<<32))
}
