package cpu

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramReadCode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	err := prog.ReadCode(strings.NewReader(strings.Join([]string{
		MakeMathImm(OP_ADD, 1, 0, 7).Binary(),
		"",
		"  " + MakeHalt().Binary(),
	}, "\n")))
	assert.NoError(err)
	assert.Equal([]Instruction{MakeMathImm(OP_ADD, 1, 0, 7), MakeHalt()}, prog.Instructions)

	err = prog.ReadCode(strings.NewReader(MakeNop().Binary() + "\n\n0101\n"))
	assert.ErrorIs(err, ErrInstructionInvalid)

	var image ErrImage
	assert.True(errors.As(err, &image))
	assert.Equal(3, image.LineNo)
	assert.Equal(3, len(prog.Instructions))
}

func TestProgramReadData(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	err := prog.ReadData(strings.NewReader(strings.Join([]string{
		"00000000000000000000000001001000",
		"-0000000000000000000000000000011",
		"0",
	}, "\n")))
	assert.NoError(err)
	assert.Equal([]int64{72, -3, 0}, prog.Data)

	err = prog.ReadData(strings.NewReader("12"))
	assert.ErrorIs(err, ErrDataInvalid)
}

func TestProgramReadLongLine(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	err := prog.ReadCode(strings.NewReader(strings.Join([]string{
		MakeNop().Binary(),
		strings.Repeat("0", 70000),
		MakeHalt().Binary(),
	}, "\n")))
	assert.ErrorIs(err, bufio.ErrTooLong)

	var image ErrImage
	assert.True(errors.As(err, &image))
	assert.Equal(2, image.LineNo)
	assert.Equal([]Instruction{MakeNop()}, prog.Instructions)

	prog = &Program{}
	err = prog.ReadData(strings.NewReader("1\n" + strings.Repeat("1", 70000) + "\n0\n"))
	assert.ErrorIs(err, bufio.ErrTooLong)
	assert.Equal([]int64{1}, prog.Data)
}

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{MakeBranch(OP_BNE, 3, 0, 3), MakeJump(1)},
		Data:         []int64{1, -1, -2147483648},
	}

	code, data := prog.Binary()
	assert.Equal([]string{
		"00010000011000000000000000000110",
		"00010110000000000000000000000011",
	}, code)
	assert.Equal([]string{
		"00000000000000000000000000000001",
		"-0000000000000000000000000000001",
		"-10000000000000000000000000000000",
	}, data)

	clone := &Program{}
	assert.NoError(clone.ReadCode(strings.NewReader(strings.Join(code, "\n"))))
	assert.NoError(clone.ReadData(strings.NewReader(strings.Join(data, "\n"))))
	assert.Equal(prog, clone)
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: []Instruction{MakeNop(), MakeHalt()}}

	var pcs []int
	var text []string
	for pc, ins := range prog.Listing() {
		pcs = append(pcs, pc)
		text = append(text, ins.String())
	}
	assert.Equal([]int{1, 2}, pcs)
	assert.Equal([]string{"nop", "halt"}, text)

	ins, ok := prog.At(2)
	assert.True(ok)
	assert.Equal(MakeHalt(), ins)

	_, ok = prog.At(0)
	assert.False(ok)
	_, ok = prog.At(3)
	assert.False(ok)
}
