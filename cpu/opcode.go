package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode is the 7-bit operation field of an instruction word.
type Opcode int

const (
	OP_NOP        = Opcode(0)         // nop
	OP_LOAD_WORD  = Opcode(1)         // lw
	OP_WRITE_WORD = Opcode(2)         // sw
	OP_ADD        = Opcode(3)         // add
	OP_SUB        = Opcode(4)         // sub
	OP_MUL        = Opcode(5)         // mul
	OP_AND        = Opcode(6)         // and
	OP_BEQ        = Opcode(7)         // beq
	OP_BNE        = Opcode(8)         // bne
	OP_BLT        = Opcode(9)         // blt
	OP_BGT        = Opcode(10)        // bgt
	OP_JUMP       = Opcode(11)        // jmp
	OP_HALT       = Opcode(0b1111111) // halt
)

var _opcode_mnemonic = map[Opcode]string{
	OP_NOP:        "nop",
	OP_LOAD_WORD:  "lw",
	OP_WRITE_WORD: "sw",
	OP_ADD:        "add",
	OP_SUB:        "sub",
	OP_MUL:        "mul",
	OP_AND:        "and",
	OP_BEQ:        "beq",
	OP_BNE:        "bne",
	OP_BLT:        "blt",
	OP_BGT:        "bgt",
	OP_JUMP:       "jmp",
	OP_HALT:       "halt",
}

// String returns the assembler mnemonic of the opcode.
func (op Opcode) String() string {
	mnemonic, ok := _opcode_mnemonic[op]
	if !ok {
		return fmt.Sprintf("Opcode(%#02x)", int(op))
	}
	return mnemonic
}

// IsMath returns true for the register/immediate arithmetic opcodes.
func (op Opcode) IsMath() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_AND:
		return true
	}
	return false
}

// IsBranch returns true for the conditional and unconditional branches.
func (op Opcode) IsBranch() bool {
	switch op {
	case OP_BEQ, OP_BNE, OP_BLT, OP_BGT, OP_JUMP:
		return true
	}
	return false
}

// IsMemory returns true for the load and store opcodes.
func (op Opcode) IsMemory() bool {
	return op == OP_LOAD_WORD || op == OP_WRITE_WORD
}

// Instruction word layout, MSB first:
//
//	| opcode:7 | rb:4 | r1:4 | field:16 | flag:1 |
const (
	INSTRUCTION_BITS = 32
	OPERAND_BITS     = 24

	OPCODE_SHIFT = 25
	RB_SHIFT     = 21
	R1_SHIFT     = 17
	FIELD_SHIFT  = 1

	OPCODE_MASK = 0x7f
	REG_MASK    = 0xf
	FIELD_MASK  = 0xffff
	FLAG_MASK   = 0x1
)

// Instruction is a packed 32-bit instruction word.
type Instruction uint32

// MakeInstruction packs an instruction word. Out-of-width arguments are
// truncated to their field width.
func MakeInstruction(op Opcode, rb, r1 int, field int, flag int) Instruction {
	word := (uint32(op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint32(rb)&REG_MASK)<<RB_SHIFT |
		(uint32(r1)&REG_MASK)<<R1_SHIFT |
		(uint32(field)&FIELD_MASK)<<FIELD_SHIFT |
		(uint32(flag) & FLAG_MASK)
	return Instruction(word)
}

// MakeMath creates a register-register arithmetic instruction rb = r1 op r2.
func MakeMath(op Opcode, rb, r1, r2 int) Instruction {
	return MakeInstruction(op, rb, r1, r2, 0)
}

// MakeMathImm creates a register-immediate arithmetic instruction rb = r1 op imm.
func MakeMathImm(op Opcode, rb, r1, imm int) Instruction {
	return MakeInstruction(op, rb, r1, imm, 1)
}

// MakeLoad creates rb = mem[r1].
func MakeLoad(rb, r1 int) Instruction {
	return MakeInstruction(OP_LOAD_WORD, rb, r1, 0, 0)
}

// MakeLoadAddr creates rb = mem[address].
func MakeLoadAddr(rb, address int) Instruction {
	return MakeInstruction(OP_LOAD_WORD, rb, 0, address, 1)
}

// MakeStore creates mem[r1] = rb.
func MakeStore(rb, r1 int) Instruction {
	return MakeInstruction(OP_WRITE_WORD, rb, r1, 0, 0)
}

// MakeStoreReg creates mem[r1] = r2, the layout emitted by the translator.
func MakeStoreReg(r1, r2 int) Instruction {
	return MakeInstruction(OP_WRITE_WORD, 0, r1, r2, 1)
}

// MakeBranch creates a compare-and-branch on rb and r1.
func MakeBranch(op Opcode, rb, r1, target int) Instruction {
	return MakeInstruction(op, rb, r1, target, 0)
}

// MakeJump creates an unconditional jump.
func MakeJump(target int) Instruction {
	return MakeInstruction(OP_JUMP, 0, 0, target, 1)
}

// MakeHalt creates a halt instruction.
func MakeHalt() Instruction {
	return MakeInstruction(OP_HALT, 0, 0, 0, 0)
}

// MakeNop creates a no-operation instruction.
func MakeNop() Instruction {
	return MakeInstruction(OP_NOP, 0, 0, 0, 0)
}

// Opcode returns the operation field.
func (ins Instruction) Opcode() Opcode {
	return Opcode((uint32(ins) >> OPCODE_SHIFT) & OPCODE_MASK)
}

// Rb returns the first register field.
func (ins Instruction) Rb() int {
	return int((uint32(ins) >> RB_SHIFT) & REG_MASK)
}

// R1 returns the second register field.
func (ins Instruction) R1() int {
	return int((uint32(ins) >> R1_SHIFT) & REG_MASK)
}

// Field returns the 16-bit register, immediate or address field.
func (ins Instruction) Field() int {
	return int((uint32(ins) >> FIELD_SHIFT) & FIELD_MASK)
}

// Flag returns the form selector bit.
func (ins Instruction) Flag() int {
	return int(uint32(ins) & FLAG_MASK)
}

// Operands returns the 24-bit operand register image (rb, r1, field).
func (ins Instruction) Operands() uint32 {
	return (uint32(ins) >> FIELD_SHIFT) & ((1 << OPERAND_BITS) - 1)
}

// Binary returns the 32-character binary text form of the word.
func (ins Instruction) Binary() string {
	return fmt.Sprintf("%032b", uint32(ins))
}

// ParseInstruction parses a 32-character binary text word.
func ParseInstruction(text string) (ins Instruction, err error) {
	text = strings.TrimSpace(text)
	if len(text) != INSTRUCTION_BITS {
		err = ErrInstructionText(text)
		return
	}

	word, err := strconv.ParseUint(text, 2, INSTRUCTION_BITS)
	if err != nil {
		err = ErrInstructionText(text)
		return
	}

	ins = Instruction(word)
	return
}

// String returns the assembly language form of the instruction.
func (ins Instruction) String() (out string) {
	op := ins.Opcode()
	rb, r1, field, flag := ins.Rb(), ins.R1(), ins.Field(), ins.Flag()

	switch {
	case op == OP_NOP, op == OP_HALT:
		out = op.String()
	case op.IsMath() && flag == 0:
		out = fmt.Sprintf("%v r%d, r%d, r%d", op, rb, r1, field)
	case op.IsMath():
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, rb, r1, field)
	case op == OP_LOAD_WORD && flag == 0:
		out = fmt.Sprintf("%v r%d, r%d", op, rb, r1)
	case op == OP_LOAD_WORD:
		out = fmt.Sprintf("%v r%d, %d", op, rb, field)
	case op == OP_WRITE_WORD && flag == 0:
		out = fmt.Sprintf("%v r%d, r%d", op, rb, r1)
	case op == OP_WRITE_WORD:
		out = fmt.Sprintf("%vr r%d, r%d", op, field, r1)
	case op == OP_JUMP:
		out = fmt.Sprintf("%v %d", op, field)
	case op.IsBranch():
		out = fmt.Sprintf("%v r%d, r%d, %d", op, rb, r1, field)
	default:
		out = fmt.Sprintf("%v %s", op, ins.Binary())
	}

	return
}
